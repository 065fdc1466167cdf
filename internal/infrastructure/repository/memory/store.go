// Package memory backs the repositories with an in-process dataset. It
// serves tests and lets the CLI run end-to-end without postgres.
package memory

import (
	"context"
	"sync"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fight"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/domain/follow"
	"github.com/fightpulse/fighter-dedup/internal/domain/merge"
)

type dataset struct {
	fighters map[string]fighter.Fighter
	fights   []fight.Fight
	follows  []follow.Follow
	aliases  []alias.Alias
}

func (d *dataset) clone() *dataset {
	out := &dataset{
		fighters: make(map[string]fighter.Fighter, len(d.fighters)),
		fights:   append([]fight.Fight(nil), d.fights...),
		follows:  append([]follow.Follow(nil), d.follows...),
		aliases:  append([]alias.Alias(nil), d.aliases...),
	}
	for id, f := range d.fighters {
		out.fighters[id] = f
	}
	return out
}

// Store holds the whole dataset behind one mutex so the merge scope can
// swap in a mutated copy atomically.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

func NewStore(fighters []fighter.Fighter, fights []fight.Fight, follows []follow.Follow, aliases []alias.Alias) *Store {
	data := &dataset{
		fighters: make(map[string]fighter.Fighter, len(fighters)),
		fights:   append([]fight.Fight(nil), fights...),
		follows:  append([]follow.Follow(nil), follows...),
		aliases:  append([]alias.Alias(nil), aliases...),
	}
	for _, f := range fighters {
		data.fighters[f.ID] = f
	}

	return &Store{data: data}
}

// WithinMerge runs fn against a deep copy of the dataset. The copy replaces
// the live data only when fn succeeds, so a failed merge leaves nothing
// behind. This matches the all-or-nothing contract the postgres store gets
// from a transaction.
func (s *Store) WithinMerge(_ context.Context, fn func(ops merge.Ops) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	if err := fn(&mergeOps{data: staged}); err != nil {
		return err
	}
	s.data = staged

	return nil
}
