package fight

import "time"

// Fight references exactly two fighters in distinct roles.
type Fight struct {
	ID         string
	Fighter1ID string
	Fighter2ID string
	EventName  string
	HappenedAt time.Time
}

// Involves reports whether the fighter appears in either role.
func (f Fight) Involves(fighterID string) bool {
	return f.Fighter1ID == fighterID || f.Fighter2ID == fighterID
}
