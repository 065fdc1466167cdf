package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/jmoiron/sqlx"

	qb "github.com/fightpulse/fighter-dedup/internal/platform/querybuilder"
)

type aliasTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	FighterID string    `db:"fighter_public_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

var aliasSelectColumns = []string{
	"id",
	"public_id",
	"fighter_public_id",
	"first_name",
	"last_name",
	"source",
	"created_at",
}

type AliasRepository struct {
	db *sqlx.DB
}

func NewAliasRepository(db *sqlx.DB) *AliasRepository {
	return &AliasRepository{db: db}
}

func (r *AliasRepository) GetByName(ctx context.Context, firstName, lastName string) (alias.Alias, bool, error) {
	query, args, err := qb.Select(aliasSelectColumns...).From("fighter_aliases").
		Where(qb.Eq("first_name", firstName), qb.Eq("last_name", lastName)).
		Limit(1).
		ToSQL()
	if err != nil {
		return alias.Alias{}, false, fmt.Errorf("build select alias query: %w", err)
	}

	var row aliasTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return alias.Alias{}, false, nil
		}
		return alias.Alias{}, false, fmt.Errorf("select alias by name: %w", err)
	}

	return alias.Alias{
		ID:        row.PublicID,
		FighterID: row.FighterID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Source:    row.Source,
		CreatedAt: row.CreatedAt,
	}, true, nil
}
