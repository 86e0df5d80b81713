package doctor

import (
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
)

// Specialty is a medical specialty. The fee schedule varies by specialty;
// adding one means registering a fee strategy for it in the billing package.
type Specialty string

const (
	SpecialtyOrtho  Specialty = "ORTHO"
	SpecialtyCardio Specialty = "CARDIO"
)

// ParseSpecialty validates a wire-level specialty value.
func ParseSpecialty(s string) (Specialty, error) {
	switch Specialty(s) {
	case SpecialtyOrtho, SpecialtyCardio:
		return Specialty(s), nil
	}
	return "", apperr.BadRequest(apperr.CodeBadRequest, "unknown specialty: "+s)
}

// Doctor is immutable after creation. NPINo is business-unique.
type Doctor struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	NPINo             string     `json:"npi_no"`
	Specialty         Specialty  `json:"specialty"`
	PracticeStartDate dates.Date `json:"practice_start_date"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ExperienceYears is the whole-year difference between the practice start
// date and today. Derived, never stored.
func (d *Doctor) ExperienceYears() int {
	return d.ExperienceYearsAt(dates.Today())
}

// ExperienceYearsAt computes experience relative to a reference date.
func (d *Doctor) ExperienceYearsAt(ref dates.Date) int {
	return d.PracticeStartDate.YearsUntil(ref)
}
