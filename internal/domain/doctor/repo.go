package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create stores a new doctor. Fails with Conflict(DUPLICATE_NPI) when
	// another doctor already holds the NPI number.
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
