package memory

import "context"

type FightRepository struct {
	store *Store
}

func NewFightRepository(store *Store) *FightRepository {
	return &FightRepository{store: store}
}

func (r *FightRepository) CountForFighter(_ context.Context, fighterID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, f := range r.store.data.fights {
		if f.Involves(fighterID) {
			count++
		}
	}

	return count, nil
}
