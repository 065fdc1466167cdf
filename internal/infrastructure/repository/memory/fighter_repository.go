package memory

import (
	"context"
	"sort"

	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
)

type FighterRepository struct {
	store *Store
}

func NewFighterRepository(store *Store) *FighterRepository {
	return &FighterRepository{store: store}
}

func (r *FighterRepository) GetByID(_ context.Context, id string) (fighter.Fighter, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	f, ok := r.store.data.fighters[id]

	return f, ok, nil
}

func (r *FighterRepository) ListAll(_ context.Context) ([]fighter.Fighter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]fighter.Fighter, 0, len(r.store.data.fighters))
	for _, f := range r.store.data.fighters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
