package doctor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

// memRepo is the in-memory store. The NPI uniqueness check and insert
// happen under one lock so concurrent creates cannot both claim an NPI.
type memRepo struct {
	mu      sync.RWMutex
	doctors map[uuid.UUID]Doctor
	byNPI   map[string]uuid.UUID
}

func NewMemRepo() Repository {
	return &memRepo{
		doctors: make(map[uuid.UUID]Doctor),
		byNPI:   make(map[string]uuid.UUID),
	}
}

func (r *memRepo) Create(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byNPI[d.NPINo]; taken {
		return apperr.Conflict(apperr.CodeDuplicateNPI, "doctor with NPI "+d.NPINo+" already exists")
	}

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now().UTC()
	r.doctors[d.ID] = *d
	r.byNPI[d.NPINo] = d.ID
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, apperr.NotFound(apperr.CodeDoctorNotFound, "doctor not found: "+id.String())
	}
	return &d, nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Doctor, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	total := len(all)
	page := paginate(all, limit, offset)
	result := make([]*Doctor, len(page))
	for i := range page {
		result[i] = &page[i]
	}
	return result, total, nil
}

func (r *memRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.doctors[id]
	return ok, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.doctors[id]
	if !ok {
		return apperr.NotFound(apperr.CodeDoctorNotFound, "doctor not found: "+id.String())
	}
	delete(r.doctors, id)
	delete(r.byNPI, d.NPINo)
	return nil
}

func paginate(all []Doctor, limit, offset int) []Doctor {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
