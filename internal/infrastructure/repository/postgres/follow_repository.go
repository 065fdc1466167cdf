package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/fightpulse/fighter-dedup/internal/platform/querybuilder"
)

type FollowRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) CountForFighter(ctx context.Context, fighterID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("fighter_follows").
		Where(qb.Eq("fighter_public_id", fighterID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count follows query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count follows for fighter: %w", err)
	}

	return count, nil
}
