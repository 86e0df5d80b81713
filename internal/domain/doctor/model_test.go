package doctor

import (
	"testing"
	"time"

	"github.com/linx-health/clinic-server/pkg/dates"
)

func TestParseSpecialty(t *testing.T) {
	for _, valid := range []string{"ORTHO", "CARDIO"} {
		if _, err := ParseSpecialty(valid); err != nil {
			t.Errorf("expected %s to parse, got %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "NEURO", "ortho"} {
		if _, err := ParseSpecialty(invalid); err == nil {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestExperienceYearsAt(t *testing.T) {
	d := &Doctor{PracticeStartDate: dates.New(1990, time.April, 10)}

	cases := []struct {
		ref  dates.Date
		want int
	}{
		{dates.New(2026, time.April, 9), 35},  // day before anniversary
		{dates.New(2026, time.April, 10), 36}, // anniversary counts
		{dates.New(2026, time.September, 1), 36},
		{dates.New(1990, time.December, 1), 0},
	}
	for _, tc := range cases {
		if got := d.ExperienceYearsAt(tc.ref); got != tc.want {
			t.Errorf("at %s: expected %d years, got %d", tc.ref, tc.want, got)
		}
	}
}
