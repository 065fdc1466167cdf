package fight

import "context"

// Repository describes fight persistence needs from use cases.
type Repository interface {
	// CountForFighter counts fights where the fighter appears in either role.
	CountForFighter(ctx context.Context, fighterID string) (int, error)
}
