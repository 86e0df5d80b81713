package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
	"github.com/linx-health/clinic-server/pkg/dates"
)

type mockApptChecker struct {
	referenced map[uuid.UUID]bool
}

func (m *mockApptChecker) ExistsByDoctor(_ context.Context, id uuid.UUID) (bool, error) {
	return m.referenced[id], nil
}

func newTestService() (*Service, *mockApptChecker) {
	checker := &mockApptChecker{referenced: make(map[uuid.UUID]bool)}
	return NewService(NewMemRepo(), checker), checker
}

func validDoctor() *Doctor {
	return &Doctor{
		FirstName:         "Meera",
		LastName:          "Shah",
		NPINo:             "1234567890",
		Specialty:         SpecialtyCardio,
		PracticeStartDate: dates.New(2000, time.January, 15),
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	d := validDoctor()
	if err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}

	got, err := svc.GetByID(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NPINo != "1234567890" {
		t.Errorf("unexpected NPI: %s", got.NPINo)
	}
}

func TestService_Create_DuplicateNPI(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.Create(context.Background(), validDoctor()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := validDoctor()
	err := svc.Create(context.Background(), dup)
	if !apperr.IsCode(err, apperr.CodeDuplicateNPI) {
		t.Errorf("expected DUPLICATE_NPI, got %v", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	missingName := validDoctor()
	missingName.FirstName = ""
	if err := svc.Create(context.Background(), missingName); err == nil {
		t.Error("expected error for missing name")
	}

	badSpecialty := validDoctor()
	badSpecialty.Specialty = "DERMA"
	if err := svc.Create(context.Background(), badSpecialty); err == nil {
		t.Error("expected error for unregistered specialty")
	}

	noStart := validDoctor()
	noStart.PracticeStartDate = dates.Date{}
	if err := svc.Create(context.Background(), noStart); err == nil {
		t.Error("expected error for missing practice start date")
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetByID(context.Background(), uuid.New())
	if !apperr.IsCode(err, apperr.CodeDoctorNotFound) {
		t.Errorf("expected DOCTOR_NOT_FOUND, got %v", err)
	}
}

func TestService_Delete_GuardedByReferences(t *testing.T) {
	svc, checker := newTestService()
	d := validDoctor()
	if err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checker.referenced[d.ID] = true
	err := svc.Delete(context.Background(), d.ID)
	if !apperr.IsCode(err, apperr.CodeDoctorHasAppointments) {
		t.Errorf("expected DOCTOR_HAS_APPOINTMENTS, got %v", err)
	}

	checker.referenced[d.ID] = false
	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), d.ID); err == nil {
		t.Error("expected doctor to be gone")
	}
}

func TestService_List_Paginates(t *testing.T) {
	svc, _ := newTestService()
	npis := []string{"1000000001", "1000000002", "1000000003"}
	for _, npi := range npis {
		d := validDoctor()
		d.NPINo = npi
		if err := svc.Create(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page, total, err := svc.List(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(page) != 2 {
		t.Errorf("expected page of 2, got %d", len(page))
	}
}
