package alias

import "context"

// Repository describes alias persistence needs from use cases.
type Repository interface {
	// GetByName looks up an alias by its exact name pair.
	GetByName(ctx context.Context, firstName, lastName string) (Alias, bool, error)
}
