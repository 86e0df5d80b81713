package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/domain/appointment"
	"github.com/linx-health/clinic-server/internal/domain/doctor"
	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
)

// AppointmentSource is the slice of the appointment store billing
// needs. Satisfied by the appointment repository.
type AppointmentSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	CountCompletedByPatientExcluding(ctx context.Context, patientID, excludeID uuid.UUID) (int, error)
}

// DoctorSource resolves the doctor an appointment references.
// Satisfied by the doctor repository.
type DoctorSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

type Service struct {
	repo         Repository
	appointments AppointmentSource
	doctors      DoctorSource
	fees         *FeeSchedule
	rates        Rates
	now          func() time.Time
}

func NewService(repo Repository, appointments AppointmentSource, doctors DoctorSource, fees *FeeSchedule, rates Rates) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		doctors:      doctors,
		fees:         fees,
		rates:        rates,
		now:          time.Now,
	}
}

// GenerateBill produces the one bill for a completed appointment.
//
// The ExistsByAppointment check is a fast fail for the common repeat
// call; the real idempotency guarantee is the repository's atomic
// Insert, which the losing side of a race still hits.
func (s *Service) GenerateBill(ctx context.Context, appointmentID uuid.UUID) (*Bill, error) {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != appointment.StatusCompleted {
		return nil, apperr.BadRequest(apperr.CodeAppointmentNotCompleted,
			"cannot bill appointment in status "+string(appt.Status))
	}

	exists, err := s.repo.ExistsByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(apperr.CodeBillAlreadyExists, "bill already exists for appointment: "+appointmentID.String())
	}

	doc, err := s.doctors.GetByID(ctx, appt.DoctorID)
	if err != nil {
		return nil, err
	}

	years := doc.ExperienceYearsAt(dates.FromTime(s.now()))
	baseFee, err := s.fees.BaseFee(doc.Specialty, years)
	if err != nil {
		return nil, err
	}

	prior, err := s.appointments.CountCompletedByPatientExcluding(ctx, appt.PatientID, appt.ID)
	if err != nil {
		return nil, err
	}

	breakdown := Calculate(baseFee, prior, s.rates)

	bill := &Bill{
		AppointmentID:   appt.ID,
		PatientID:       appt.PatientID,
		DoctorID:        appt.DoctorID,
		BaseFee:         breakdown.BaseFee,
		DiscountPercent: breakdown.DiscountPercent,
		DiscountAmount:  breakdown.DiscountAmount,
		GSTAmount:       breakdown.GSTAmount,
		TotalAmount:     breakdown.TotalAmount,
		InsuranceAmount: breakdown.InsuranceAmount,
		CoPayAmount:     breakdown.CoPayAmount,
	}
	if err := s.repo.Insert(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *Service) GetBill(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBillByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Bill, error) {
	return s.repo.GetByAppointment(ctx, appointmentID)
}

func (s *Service) ListBills(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ExistsByAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	return s.repo.ExistsByAppointment(ctx, appointmentID)
}
