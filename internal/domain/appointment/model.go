package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
)

// Status is an appointment lifecycle state. SCHEDULED is the only
// non-terminal state; COMPLETED and CANCELLED are terminal.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus validates a wire-level status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", apperr.BadRequest(apperr.CodeBadRequest, "unknown status: "+s)
}

// Terminal reports whether no transitions leave this status.
func (s Status) Terminal() bool {
	return s != StatusScheduled
}

type Appointment struct {
	ID              uuid.UUID  `json:"id"`
	PatientID       uuid.UUID  `json:"patient_id"`
	DoctorID        uuid.UUID  `json:"doctor_id"`
	AppointmentDate dates.Date `json:"appointment_date"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Transition returns a copy of a with the target status applied. Only
// SCHEDULED→COMPLETED and SCHEDULED→CANCELLED are legal; every other
// pair, including SCHEDULED→SCHEDULED, is rejected through the same two
// rules so additional terminal states would not need new cases. No field
// other than Status changes.
func Transition(a Appointment, target Status) (Appointment, error) {
	if a.Status.Terminal() {
		return Appointment{}, apperr.BadRequest(apperr.CodeInvalidStatusTransition,
			"cannot change status of "+string(a.Status)+" appointment")
	}
	if target == StatusScheduled {
		return Appointment{}, apperr.BadRequest(apperr.CodeInvalidStatusTransition,
			"appointment is already SCHEDULED")
	}
	a.Status = target
	return a, nil
}
