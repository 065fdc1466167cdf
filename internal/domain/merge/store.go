package merge

import (
	"context"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
)

// Store opens an all-or-nothing scope for a fighter merge. Every mutation
// issued through the Ops passed to fn is committed together when fn returns
// nil and discarded entirely when fn returns an error.
type Store interface {
	WithinMerge(ctx context.Context, fn func(ops Ops) error) error
}

// Ops are the mutations available inside a merge scope.
type Ops interface {
	// ReassignFights re-points both fight roles from one fighter to another
	// and returns the number of fights touched.
	ReassignFights(ctx context.Context, fromID, toID string) (int64, error)

	// ReassignFollows moves follows from one fighter to another. Follows
	// whose user already follows toID are deleted rather than moved, so the
	// (user, fighter) uniqueness invariant holds afterwards. Returns how
	// many follows moved and how many were dropped as duplicates.
	ReassignFollows(ctx context.Context, fromID, toID string) (moved, duplicates int64, err error)

	// ReassignAliases re-points existing aliases from one fighter to another.
	ReassignAliases(ctx context.Context, fromID, toID string) (int64, error)

	// AliasExists reports whether an alias with the exact name pair exists.
	AliasExists(ctx context.Context, firstName, lastName string) (bool, error)

	// CreateAlias inserts an alias. It returns false without error when the
	// name pair already exists; any other failure is an error.
	CreateAlias(ctx context.Context, a alias.Alias) (bool, error)

	// UpdateFighter persists the full fighter record, aggregates included.
	UpdateFighter(ctx context.Context, f fighter.Fighter) error

	// DeleteFighter removes the fighter record permanently.
	DeleteFighter(ctx context.Context, id string) error
}
