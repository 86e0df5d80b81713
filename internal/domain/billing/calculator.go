package billing

import "github.com/shopspring/decimal"

// Rates are the process-wide billing constants. They are passed into
// the calculator explicitly so it stays a pure function of its inputs.
type Rates struct {
	GST                decimal.Decimal
	InsuranceShare     decimal.Decimal
	CoPayShare         decimal.Decimal
	MaxDiscountPercent int
}

func DefaultRates() Rates {
	return Rates{
		GST:                decimal.NewFromFloat(0.12),
		InsuranceShare:     decimal.NewFromFloat(0.90),
		CoPayShare:         decimal.NewFromFloat(0.10),
		MaxDiscountPercent: 10,
	}
}

// Breakdown holds every amount produced by a billing calculation.
type Breakdown struct {
	BaseFee         decimal.Decimal
	DiscountPercent int
	DiscountAmount  decimal.Decimal
	GSTAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	InsuranceAmount decimal.Decimal
	CoPayAmount     decimal.Decimal
}

// round2 rounds half up to two decimal places. Amounts are never
// negative here, so Round's half-away-from-zero matches half-up.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Calculate runs the fee pipeline: loyalty discount, then GST on the
// discounted amount, then the insurer/patient split. Each monetary
// output is rounded exactly once; later steps consume the rounded
// values of earlier ones.
//
// InsuranceAmount and CoPayAmount are each rounded independently from
// the total, so at certain fractional totals their sum can differ from
// TotalAmount by one cent.
func Calculate(baseFee decimal.Decimal, priorCompleted int, r Rates) Breakdown {
	pct := priorCompleted
	if pct > r.MaxDiscountPercent {
		pct = r.MaxDiscountPercent
	}

	discount := round2(baseFee.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)))
	discounted := baseFee.Sub(discount)
	gst := round2(discounted.Mul(r.GST))
	total := discounted.Add(gst)

	return Breakdown{
		BaseFee:         round2(baseFee),
		DiscountPercent: pct,
		DiscountAmount:  discount,
		GSTAmount:       gst,
		TotalAmount:     total,
		InsuranceAmount: round2(total.Mul(r.InsuranceShare)),
		CoPayAmount:     round2(total.Mul(r.CoPayShare)),
	}
}
