package fighter

import (
	"fmt"
	"strings"
	"time"
)

// Fighter is the canonical athlete record the dedup tooling operates on.
// Import pipelines create these; the merge operation is the only consumer
// that deletes them.
type Fighter struct {
	ID        string
	FirstName string
	LastName  string

	// Denormalized aggregates maintained by the rating subsystem and
	// reconciled during merges.
	TotalFights   int
	TotalRatings  int
	GreatFights   int
	AverageRating float64

	ProfileImage string
	ActionImage  string

	CreatedAt time.Time
}

// FullName joins the name parts. Single-name fighters keep the whole name in
// LastName, so an empty FirstName is normal.
func (f Fighter) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}

// HasImage reports whether either media slot is populated.
func (f Fighter) HasImage() bool {
	return f.ProfileImage != "" || f.ActionImage != ""
}

func (f Fighter) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fighter id is required")
	}
	if strings.TrimSpace(f.LastName) == "" && strings.TrimSpace(f.FirstName) == "" {
		return fmt.Errorf("fighter name is required")
	}
	if f.TotalFights < 0 || f.TotalRatings < 0 || f.GreatFights < 0 {
		return fmt.Errorf("fighter counters must not be negative")
	}

	return nil
}
