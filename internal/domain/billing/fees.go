package billing

import (
	"github.com/shopspring/decimal"

	"github.com/linx-health/clinic-server/internal/domain/doctor"
	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

// Bracket is an experience band used to pick a base fee.
type Bracket string

const (
	BracketJunior Bracket = "JUNIOR"
	BracketMid    Bracket = "MID"
	BracketSenior Bracket = "SENIOR"
)

// BracketFor buckets whole experience years. 0-19 is junior, 20-30 is
// mid, 31 and up is senior.
func BracketFor(years int) Bracket {
	switch {
	case years <= 19:
		return BracketJunior
	case years <= 30:
		return BracketMid
	default:
		return BracketSenior
	}
}

// FeeStrategy holds the base fee for each bracket of one specialty.
type FeeStrategy struct {
	Junior decimal.Decimal
	Mid    decimal.Decimal
	Senior decimal.Decimal
}

func (s FeeStrategy) fee(b Bracket) decimal.Decimal {
	switch b {
	case BracketJunior:
		return s.Junior
	case BracketMid:
		return s.Mid
	default:
		return s.Senior
	}
}

// FeeSchedule resolves base fees by specialty and experience. New
// specialties are added by registering a strategy, not by changing
// bracket logic.
type FeeSchedule struct {
	strategies map[doctor.Specialty]FeeStrategy
}

func NewFeeSchedule() *FeeSchedule {
	return &FeeSchedule{strategies: make(map[doctor.Specialty]FeeStrategy)}
}

func (s *FeeSchedule) Register(spec doctor.Specialty, strategy FeeStrategy) {
	s.strategies[spec] = strategy
}

// DefaultFeeSchedule carries the standard clinic fee table.
func DefaultFeeSchedule() *FeeSchedule {
	s := NewFeeSchedule()
	s.Register(doctor.SpecialtyOrtho, FeeStrategy{
		Junior: decimal.NewFromInt(800),
		Mid:    decimal.NewFromInt(1000),
		Senior: decimal.NewFromInt(1500),
	})
	s.Register(doctor.SpecialtyCardio, FeeStrategy{
		Junior: decimal.NewFromInt(1000),
		Mid:    decimal.NewFromInt(1500),
		Senior: decimal.NewFromInt(2000),
	})
	return s
}

// BaseFee resolves the fee for a specialty at the given experience. A
// specialty with no registered strategy is a configuration error.
func (s *FeeSchedule) BaseFee(spec doctor.Specialty, years int) (decimal.Decimal, error) {
	strategy, ok := s.strategies[spec]
	if !ok {
		return decimal.Decimal{}, apperr.BadRequest(apperr.CodeUnknownSpecialty, "no fee strategy registered for specialty: "+string(spec))
	}
	return strategy.fee(BracketFor(years)), nil
}
