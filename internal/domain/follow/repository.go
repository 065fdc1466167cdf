package follow

import "context"

// Repository describes follow persistence needs from use cases.
type Repository interface {
	CountForFighter(ctx context.Context, fighterID string) (int, error)
}
