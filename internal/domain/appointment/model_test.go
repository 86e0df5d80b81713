package appointment

import (
	"testing"

	"github.com/linx-health/clinic-server/internal/platform/apperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"SCHEDULED", "COMPLETED", "CANCELLED"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q): unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "scheduled", "DONE", "NO_SHOW"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q): expected error", invalid)
		}
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		target Status
		wantOK bool
	}{
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to scheduled", StatusScheduled, StatusScheduled, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"completed to scheduled", StatusCompleted, StatusScheduled, false},
		{"completed to completed", StatusCompleted, StatusCompleted, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"cancelled to scheduled", StatusCancelled, StatusScheduled, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(Appointment{Status: tt.from}, tt.target)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Status != tt.target {
					t.Errorf("expected status %s, got %s", tt.target, got.Status)
				}
				return
			}
			if !apperr.IsCode(err, apperr.CodeInvalidStatusTransition) {
				t.Errorf("expected INVALID_STATUS_TRANSITION, got %v", err)
			}
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	if StatusScheduled.Terminal() {
		t.Error("SCHEDULED must not be terminal")
	}
	if !StatusCompleted.Terminal() {
		t.Error("COMPLETED must be terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Error("CANCELLED must be terminal")
	}
}
