package postgres

import (
	"context"
	"fmt"

	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/jmoiron/sqlx"

	qb "github.com/fightpulse/fighter-dedup/internal/platform/querybuilder"
)

type FighterRepository struct {
	db *sqlx.DB
}

var fighterSelectColumns = []string{
	"id",
	"public_id",
	"first_name",
	"last_name",
	"total_fights",
	"total_ratings",
	"great_fights",
	"average_rating",
	"profile_image",
	"action_image",
	"created_at",
	"updated_at",
}

func NewFighterRepository(db *sqlx.DB) *FighterRepository {
	return &FighterRepository{db: db}
}

func (r *FighterRepository) GetByID(ctx context.Context, id string) (fighter.Fighter, bool, error) {
	query, args, err := qb.Select(fighterSelectColumns...).From("fighters").
		Where(qb.Eq("public_id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fighter.Fighter{}, false, fmt.Errorf("build select fighter query: %w", err)
	}

	var row fighterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fighter.Fighter{}, false, nil
		}
		return fighter.Fighter{}, false, fmt.Errorf("select fighter by id: %w", err)
	}

	return fighterFromRow(row), true, nil
}

func (r *FighterRepository) ListAll(ctx context.Context) ([]fighter.Fighter, error) {
	query, args, err := qb.Select(fighterSelectColumns...).From("fighters").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fighters query: %w", err)
	}

	var rows []fighterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fighters: %w", err)
	}

	out := make([]fighter.Fighter, 0, len(rows))
	for _, row := range rows {
		out = append(out, fighterFromRow(row))
	}

	return out, nil
}

func fighterFromRow(row fighterTableModel) fighter.Fighter {
	return fighter.Fighter{
		ID:            row.PublicID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		TotalFights:   row.TotalFights,
		TotalRatings:  row.TotalRatings,
		GreatFights:   row.GreatFights,
		AverageRating: row.AverageRating,
		ProfileImage:  nullStringToString(row.ProfileImage),
		ActionImage:   nullStringToString(row.ActionImage),
		CreatedAt:     row.CreatedAt,
	}
}
