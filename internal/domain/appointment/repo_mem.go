package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

type memRepo struct {
	mu    sync.RWMutex
	appts map[uuid.UUID]Appointment
}

func NewMemRepo() Repository {
	return &memRepo{appts: make(map[uuid.UUID]Appointment)}
}

func (r *memRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.appts[a.ID] = *a
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appts[id]
	if !ok {
		return nil, apperr.NotFound(apperr.CodeAppointmentNotFound, "appointment not found: "+id.String())
	}
	return &a, nil
}

func (r *memRepo) list(filter func(Appointment) bool, limit, offset int) ([]*Appointment, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []Appointment
	for _, a := range r.appts {
		if filter == nil || filter(a) {
			all = append(all, a)
		}
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
	result := make([]*Appointment, len(page))
	for i := range page {
		result[i] = &page[i]
	}
	return result, total, nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Appointment, int, error) {
	return r.list(nil, limit, offset)
}

func (r *memRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return r.list(func(a Appointment) bool { return a.PatientID == patientID }, limit, offset)
}

func (r *memRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return r.list(func(a Appointment) bool { return a.DoctorID == doctorID }, limit, offset)
}

// UpdateStatus holds the write lock across read, transition and store, so
// the SCHEDULED check and the write are one step.
func (r *memRepo) UpdateStatus(_ context.Context, id uuid.UUID, target Status) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appts[id]
	if !ok {
		return nil, apperr.NotFound(apperr.CodeAppointmentNotFound, "appointment not found: "+id.String())
	}

	updated, err := Transition(a, target)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now().UTC()
	r.appts[id] = updated
	return &updated, nil
}

func (r *memRepo) CountCompletedByPatientExcluding(_ context.Context, patientID, excludeID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, a := range r.appts {
		if a.PatientID == patientID && a.Status == StatusCompleted && a.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (r *memRepo) ExistsByPatient(_ context.Context, patientID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appts {
		if a.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) ExistsByDoctor(_ context.Context, doctorID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appts {
		if a.DoctorID == doctorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appts[id]; !ok {
		return apperr.NotFound(apperr.CodeAppointmentNotFound, "appointment not found: "+id.String())
	}
	delete(r.appts, id)
	return nil
}
