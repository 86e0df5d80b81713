package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/linx-health/clinic-server/pkg/dates"
)

// InsuranceInfo is embedded within a patient, not stored separately.
type InsuranceInfo struct {
	BINNo    string `json:"bin_no"`
	PCNNo    string `json:"pcn_no"`
	MemberID string `json:"member_id"`
}

type Patient struct {
	ID        uuid.UUID     `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	DOB       dates.Date    `json:"dob"`
	Insurance InsuranceInfo `json:"insurance"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Age is the whole-year difference between DOB and today. Derived, never
// stored.
func (p *Patient) Age() int {
	return p.DOB.YearsUntil(dates.Today())
}
