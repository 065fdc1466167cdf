package memory

import "context"

type FollowRepository struct {
	store *Store
}

func NewFollowRepository(store *Store) *FollowRepository {
	return &FollowRepository{store: store}
}

func (r *FollowRepository) CountForFighter(_ context.Context, fighterID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, fl := range r.store.data.follows {
		if fl.FighterID == fighterID {
			count++
		}
	}

	return count, nil
}
