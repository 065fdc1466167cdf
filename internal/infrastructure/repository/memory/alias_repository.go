package memory

import (
	"context"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
)

type AliasRepository struct {
	store *Store
}

func NewAliasRepository(store *Store) *AliasRepository {
	return &AliasRepository{store: store}
}

func (r *AliasRepository) GetByName(_ context.Context, firstName, lastName string) (alias.Alias, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.data.aliases {
		if a.FirstName == firstName && a.LastName == lastName {
			return a, true, nil
		}
	}

	return alias.Alias{}, false, nil
}
