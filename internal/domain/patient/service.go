package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

// AppointmentChecker reports whether any appointment references a patient.
type AppointmentChecker interface {
	ExistsByPatient(ctx context.Context, patientID uuid.UUID) (bool, error)
}

type Service struct {
	repo  Repository
	appts AppointmentChecker
}

func NewService(repo Repository, appts AppointmentChecker) *Service {
	return &Service{repo: repo, appts: appts}
}

func validate(p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return apperr.BadRequest(apperr.CodeBadRequest, "first_name and last_name are required")
	}
	if p.DOB.IsZero() {
		return apperr.BadRequest(apperr.CodeBadRequest, "dob is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Delete removes a patient unless appointments still reference them.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	referenced, err := s.appts.ExistsByPatient(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperr.Conflict(apperr.CodePatientHasAppointments,
			"patient has appointments and cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}
