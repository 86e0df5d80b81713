package appointment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	List(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error)

	// UpdateStatus applies a lifecycle transition as one atomic
	// read-modify-write, so two concurrent transitions on the same
	// appointment cannot both observe SCHEDULED and both succeed.
	UpdateStatus(ctx context.Context, id uuid.UUID, target Status) (*Appointment, error)

	// CountCompletedByPatientExcluding counts COMPLETED appointments for
	// a patient, excluding one appointment id. The exclusion keeps the
	// visit currently being billed out of its own loyalty-discount count.
	CountCompletedByPatientExcluding(ctx context.Context, patientID, excludeID uuid.UUID) (int, error)

	ExistsByPatient(ctx context.Context, patientID uuid.UUID) (bool, error)
	ExistsByDoctor(ctx context.Context, doctorID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
