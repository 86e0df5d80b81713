package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill is the immutable record of a single appointment's charges. Every
// intermediate amount is kept alongside the total so the calculation
// can be audited without re-running it.
type Bill struct {
	ID              uuid.UUID
	AppointmentID   uuid.UUID
	PatientID       uuid.UUID
	DoctorID        uuid.UUID
	BaseFee         decimal.Decimal
	DiscountPercent int
	DiscountAmount  decimal.Decimal
	GSTAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	InsuranceAmount decimal.Decimal
	CoPayAmount     decimal.Decimal
	CreatedAt       time.Time
}
