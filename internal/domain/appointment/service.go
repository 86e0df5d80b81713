package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
)

// PatientChecker reports whether a patient exists. Satisfied by the
// patient repository.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// DoctorChecker reports whether a doctor exists. Satisfied by the
// doctor repository.
type DoctorChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// BillChecker reports whether an appointment already has a bill.
// Satisfied by the billing repository.
type BillChecker interface {
	ExistsByAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	patients PatientChecker
	doctors  DoctorChecker
	bills    BillChecker
}

func NewService(repo Repository, patients PatientChecker, doctors DoctorChecker, bills BillChecker) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors, bills: bills}
}

// Create schedules a new appointment. Both referenced parties must
// exist; new appointments always start SCHEDULED.
func (s *Service) Create(ctx context.Context, patientID, doctorID uuid.UUID, date dates.Date) (*Appointment, error) {
	if patientID == uuid.Nil {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "patient_id is required")
	}
	if doctorID == uuid.Nil {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "doctor_id is required")
	}
	if date.IsZero() {
		return nil, apperr.BadRequest(apperr.CodeBadRequest, "appointment_date is required")
	}

	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.BadRequest(apperr.CodeInvalidPatient, "patient not found: "+patientID.String())
	}

	ok, err = s.doctors.Exists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.BadRequest(apperr.CodeInvalidDoctor, "doctor not found: "+doctorID.String())
	}

	a := &Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		Status:          StatusScheduled,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByDoctor(ctx, doctorID, limit, offset)
}

// UpdateStatus moves an appointment to a terminal state. The repository
// performs the read-check-write atomically, so concurrent callers
// cannot both succeed.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, raw string) (*Appointment, error) {
	target, err := ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, target)
}

// Delete removes an appointment unless a bill has been generated for it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	billed, err := s.bills.ExistsByAppointment(ctx, id)
	if err != nil {
		return err
	}
	if billed {
		return apperr.Conflict(apperr.CodeAppointmentHasBill, "appointment has a bill and cannot be deleted: "+id.String())
	}

	return s.repo.Delete(ctx, id)
}
