package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

// AppointmentChecker reports whether any appointment references a doctor.
// Implemented by the appointment repository; injected to keep the doctor
// package free of an appointment dependency.
type AppointmentChecker interface {
	ExistsByDoctor(ctx context.Context, doctorID uuid.UUID) (bool, error)
}

type Service struct {
	repo  Repository
	appts AppointmentChecker
}

func NewService(repo Repository, appts AppointmentChecker) *Service {
	return &Service{repo: repo, appts: appts}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return apperr.BadRequest(apperr.CodeBadRequest, "first_name and last_name are required")
	}
	if d.NPINo == "" {
		return apperr.BadRequest(apperr.CodeBadRequest, "npi_no is required")
	}
	if _, err := ParseSpecialty(string(d.Specialty)); err != nil {
		return err
	}
	if d.PracticeStartDate.IsZero() {
		return apperr.BadRequest(apperr.CodeBadRequest, "practice_start_date is required")
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Delete removes a doctor unless appointments still reference them.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	referenced, err := s.appts.ExistsByDoctor(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperr.Conflict(apperr.CodeDoctorHasAppointments,
			"doctor has appointments and cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}
