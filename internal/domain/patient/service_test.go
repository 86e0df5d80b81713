package patient

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

func (m *mockApptChecker) ExistsByPatient(_ context.Context, id uuid.UUID) (bool, error) {
	return m.referenced[id], nil
}

func newTestService() (*Service, *mockApptChecker) {
	checker := &mockApptChecker{referenced: make(map[uuid.UUID]bool)}
	return NewService(NewMemRepo(), checker), checker
}

func validPatient() *Patient {
	return &Patient{
		FirstName: "Rosa",
		LastName:  "Delgado",
		DOB:       dates.New(1988, time.July, 3),
		Insurance: InsuranceInfo{BINNo: "610014", PCNNo: "MEDDPRIME", MemberID: "MBR-4471"},
	}
}

func TestService_CreateAndGet(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Insurance.MemberID != "MBR-4471" {
		t.Errorf("unexpected insurance member id: %s", got.Insurance.MemberID)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	p := validPatient()
	p.FirstName = ""
	if err := svc.Create(context.Background(), p); err == nil {
		t.Error("expected error for missing name")
	}

	p = validPatient()
	p.DOB = dates.Date{}
	if err := svc.Create(context.Background(), p); err == nil {
		t.Error("expected error for missing dob")
	}
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := validPatient()
	updated.ID = p.ID
	updated.LastName = "Delgado-Ruiz"
	if err := svc.Update(context.Background(), updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), p.ID)
	if got.LastName != "Delgado-Ruiz" {
		t.Errorf("expected updated last name, got %s", got.LastName)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	p.ID = uuid.New()
	err := svc.Update(context.Background(), p)
	if !apperr.IsCode(err, apperr.CodePatientNotFound) {
		t.Errorf("expected PATIENT_NOT_FOUND, got %v", err)
	}
}

func TestService_Delete_GuardedByReferences(t *testing.T) {
	svc, checker := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checker.referenced[p.ID] = true
	err := svc.Delete(context.Background(), p.ID)
	if !apperr.IsCode(err, apperr.CodePatientHasAppointments) {
		t.Errorf("expected PATIENT_HAS_APPOINTMENTS, got %v", err)
	}

	checker.referenced[p.ID] = false
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPatient_DOBYearsUntil(t *testing.T) {
	p := &Patient{DOB: dates.New(2000, time.January, 1)}
	ref := dates.New(2026, time.September, 1)
	if got := p.DOB.YearsUntil(ref); got != 26 {
		t.Errorf("expected 26, got %d", got)
	}
}
