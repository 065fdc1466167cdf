package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/fightpulse/fighter-dedup/internal/platform/querybuilder"
)

type FightRepository struct {
	db *sqlx.DB
}

func NewFightRepository(db *sqlx.DB) *FightRepository {
	return &FightRepository{db: db}
}

// CountForFighter counts fights where the fighter appears in either role.
func (r *FightRepository) CountForFighter(ctx context.Context, fighterID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("fights").
		Where(qb.Or(
			qb.Eq("fighter1_public_id", fighterID),
			qb.Eq("fighter2_public_id", fighterID),
		)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fights query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count fights for fighter: %w", err)
	}

	return count, nil
}
