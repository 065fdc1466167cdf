package postgres

import (
	"context"
	"fmt"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/domain/merge"
	"github.com/jmoiron/sqlx"

	qb "github.com/fightpulse/fighter-dedup/internal/platform/querybuilder"
)

// MergeStore runs merge scopes inside a single database transaction.
type MergeStore struct {
	db *sqlx.DB
}

func NewMergeStore(db *sqlx.DB) *MergeStore {
	return &MergeStore{db: db}
}

func (s *MergeStore) WithinMerge(ctx context.Context, fn func(ops merge.Ops) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin merge transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&mergeOps{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge transaction: %w", err)
	}

	return nil
}

type mergeOps struct {
	tx *sqlx.Tx
}

func (o *mergeOps) ReassignFights(ctx context.Context, fromID, toID string) (int64, error) {
	var total int64
	for _, column := range []string{"fighter1_public_id", "fighter2_public_id"} {
		query, args, err := qb.Update("fights").
			Set(column, toID).
			Where(qb.Eq(column, fromID)).
			ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build reassign fights query: %w", err)
		}

		res, err := o.tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("reassign fights on %s: %w", column, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("count reassigned fights: %w", err)
		}
		total += affected
	}

	return total, nil
}

func (o *mergeOps) ReassignFollows(ctx context.Context, fromID, toID string) (int64, int64, error) {
	// Drop follows whose user already follows the target first; the
	// remaining rows can then move without tripping the (user, fighter)
	// uniqueness constraint.
	deleteQuery, deleteArgs, err := qb.DeleteFrom("fighter_follows").
		Where(
			qb.Eq("fighter_public_id", fromID),
			qb.Expr("user_id IN (SELECT user_id FROM fighter_follows WHERE fighter_public_id = ?)", toID),
		).
		ToSQL()
	if err != nil {
		return 0, 0, fmt.Errorf("build delete duplicate follows query: %w", err)
	}

	res, err := o.tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return 0, 0, fmt.Errorf("delete duplicate follows: %w", err)
	}
	duplicates, err := res.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("count deleted duplicate follows: %w", err)
	}

	updateQuery, updateArgs, err := qb.Update("fighter_follows").
		Set("fighter_public_id", toID).
		Where(qb.Eq("fighter_public_id", fromID)).
		ToSQL()
	if err != nil {
		return 0, 0, fmt.Errorf("build reassign follows query: %w", err)
	}

	res, err = o.tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		return 0, 0, fmt.Errorf("reassign follows: %w", err)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("count reassigned follows: %w", err)
	}

	return moved, duplicates, nil
}

func (o *mergeOps) ReassignAliases(ctx context.Context, fromID, toID string) (int64, error) {
	query, args, err := qb.Update("fighter_aliases").
		Set("fighter_public_id", toID).
		Where(qb.Eq("fighter_public_id", fromID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build reassign aliases query: %w", err)
	}

	res, err := o.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("reassign aliases: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count reassigned aliases: %w", err)
	}

	return affected, nil
}

func (o *mergeOps) AliasExists(ctx context.Context, firstName, lastName string) (bool, error) {
	query, args, err := qb.Select("1").From("fighter_aliases").
		Where(qb.Eq("first_name", firstName), qb.Eq("last_name", lastName)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build alias exists query: %w", err)
	}

	var one int
	if err := o.tx.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check alias exists: %w", err)
	}

	return true, nil
}

func (o *mergeOps) CreateAlias(ctx context.Context, a alias.Alias) (bool, error) {
	row := struct {
		PublicID  string `db:"public_id"`
		FighterID string `db:"fighter_public_id"`
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
		Source    string `db:"source"`
	}{
		PublicID:  a.ID,
		FighterID: a.FighterID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Source:    a.Source,
	}

	query, args, err := qb.InsertModel("fighter_aliases", row, "")
	if err != nil {
		return false, fmt.Errorf("build insert alias query: %w", err)
	}

	if _, err := o.tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			// Another alias already maps this name pair.
			return false, nil
		}
		return false, fmt.Errorf("insert alias: %w", err)
	}

	return true, nil
}

func (o *mergeOps) UpdateFighter(ctx context.Context, f fighter.Fighter) error {
	query, args, err := qb.Update("fighters").
		Set("total_fights", f.TotalFights).
		Set("total_ratings", f.TotalRatings).
		Set("great_fights", f.GreatFights).
		Set("average_rating", f.AverageRating).
		Set("profile_image", stringToNullString(f.ProfileImage)).
		Set("action_image", stringToNullString(f.ActionImage)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", f.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fighter query: %w", err)
	}

	res, err := o.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fighter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("count updated fighters: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fighter %s not found", f.ID)
	}

	return nil
}

func (o *mergeOps) DeleteFighter(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("fighters").
		Where(qb.Eq("public_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete fighter query: %w", err)
	}

	res, err := o.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete fighter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("count deleted fighters: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fighter %s not found", id)
	}

	return nil
}
