package alias

import "time"

// Alias maps a historical name variant to a canonical fighter so future
// imports that encounter the name resolve to the surviving record instead of
// re-creating a duplicate. The (FirstName, LastName) pair is unique in
// storage.
type Alias struct {
	ID        string
	FighterID string
	FirstName string
	LastName  string
	// Source records where the alias came from, e.g. "merge" or an import
	// pipeline name.
	Source    string
	CreatedAt time.Time
}
