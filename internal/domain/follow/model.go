package follow

import "time"

// Follow is a user's subscription to a fighter. A user may follow a given
// fighter at most once; the (UserID, FighterID) pair is unique in storage.
type Follow struct {
	ID        string
	UserID    string
	FighterID string
	CreatedAt time.Time
}
