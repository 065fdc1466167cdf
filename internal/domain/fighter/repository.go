package fighter

import "context"

// Repository describes fighter persistence needs from use cases.
type Repository interface {
	// GetByID returns the fighter and whether it exists.
	GetByID(ctx context.Context, id string) (Fighter, bool, error)
	// ListAll returns every active fighter. The set is small enough
	// (tens of thousands) that a full scan is acceptable.
	ListAll(ctx context.Context) ([]Fighter, error)
}
