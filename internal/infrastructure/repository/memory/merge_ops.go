package memory

import (
	"context"
	"fmt"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/domain/follow"
)

// mergeOps mutates a staged dataset copy; the Store swaps it in on success.
type mergeOps struct {
	data *dataset
}

func (o *mergeOps) ReassignFights(_ context.Context, fromID, toID string) (int64, error) {
	var touched int64
	for i := range o.data.fights {
		f := &o.data.fights[i]
		moved := false
		if f.Fighter1ID == fromID {
			f.Fighter1ID = toID
			moved = true
		}
		if f.Fighter2ID == fromID {
			f.Fighter2ID = toID
			moved = true
		}
		if moved {
			touched++
		}
	}

	return touched, nil
}

func (o *mergeOps) ReassignFollows(_ context.Context, fromID, toID string) (int64, int64, error) {
	usersOnTarget := make(map[string]struct{})
	for _, fl := range o.data.follows {
		if fl.FighterID == toID {
			usersOnTarget[fl.UserID] = struct{}{}
		}
	}

	var (
		moved      int64
		duplicates int64
		kept       = make([]follow.Follow, 0, len(o.data.follows))
	)
	for _, fl := range o.data.follows {
		if fl.FighterID != fromID {
			kept = append(kept, fl)
			continue
		}
		if _, dup := usersOnTarget[fl.UserID]; dup {
			// The user already follows the kept fighter; dropping the row
			// preserves the (user, fighter) uniqueness invariant.
			duplicates++
			continue
		}
		fl.FighterID = toID
		usersOnTarget[fl.UserID] = struct{}{}
		moved++
		kept = append(kept, fl)
	}
	o.data.follows = kept

	return moved, duplicates, nil
}

func (o *mergeOps) ReassignAliases(_ context.Context, fromID, toID string) (int64, error) {
	var touched int64
	for i := range o.data.aliases {
		if o.data.aliases[i].FighterID == fromID {
			o.data.aliases[i].FighterID = toID
			touched++
		}
	}

	return touched, nil
}

func (o *mergeOps) AliasExists(_ context.Context, firstName, lastName string) (bool, error) {
	for _, a := range o.data.aliases {
		if a.FirstName == firstName && a.LastName == lastName {
			return true, nil
		}
	}

	return false, nil
}

func (o *mergeOps) CreateAlias(ctx context.Context, a alias.Alias) (bool, error) {
	exists, err := o.AliasExists(ctx, a.FirstName, a.LastName)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	o.data.aliases = append(o.data.aliases, a)

	return true, nil
}

func (o *mergeOps) UpdateFighter(_ context.Context, f fighter.Fighter) error {
	if _, ok := o.data.fighters[f.ID]; !ok {
		return fmt.Errorf("fighter %s not found", f.ID)
	}
	o.data.fighters[f.ID] = f

	return nil
}

func (o *mergeOps) DeleteFighter(_ context.Context, id string) error {
	if _, ok := o.data.fighters[id]; !ok {
		return fmt.Errorf("fighter %s not found", id)
	}
	delete(o.data.fighters, id)

	return nil
}
