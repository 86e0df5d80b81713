package billing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

// memRepo is the in-memory store. The per-appointment existence check
// and insert happen under one lock, which is what makes Insert an
// atomic insert-if-absent.
type memRepo struct {
	mu     sync.RWMutex
	bills  map[uuid.UUID]Bill
	byAppt map[uuid.UUID]uuid.UUID
}

func NewMemRepo() Repository {
	return &memRepo{
		bills:  make(map[uuid.UUID]Bill),
		byAppt: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *memRepo) Insert(_ context.Context, b *Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byAppt[b.AppointmentID]; taken {
		return apperr.Conflict(apperr.CodeBillAlreadyExists, "bill already exists for appointment: "+b.AppointmentID.String())
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now().UTC()
	r.bills[b.ID] = *b
	r.byAppt[b.AppointmentID] = b.ID
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bills[id]
	if !ok {
		return nil, apperr.NotFound(apperr.CodeBillNotFound, "bill not found: "+id.String())
	}
	return &b, nil
}

func (r *memRepo) GetByAppointment(_ context.Context, appointmentID uuid.UUID) (*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byAppt[appointmentID]
	if !ok {
		return nil, apperr.NotFound(apperr.CodeBillNotFound, "no bill for appointment: "+appointmentID.String())
	}
	b := r.bills[id]
	return &b, nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Bill, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Bill, 0, len(r.bills))
	for _, b := range r.bills {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := all[offset:end]
	result := make([]*Bill, len(page))
	for i := range page {
		result[i] = &page[i]
	}
	return result, total, nil
}

func (r *memRepo) ExistsByAppointment(_ context.Context, appointmentID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byAppt[appointmentID]
	return ok, nil
}
