package billing

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores bills. Insert is the idempotency gate: it must
// atomically refuse a second bill for the same appointment, so two
// concurrent callers can never both succeed.
type Repository interface {
	// Insert stores the bill if and only if no bill exists for its
	// appointment, returning BILL_ALREADY_EXISTS otherwise.
	Insert(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Bill, error)
	List(ctx context.Context, limit, offset int) ([]*Bill, int, error)
	ExistsByAppointment(ctx context.Context, appointmentID uuid.UUID) (bool, error)
}
