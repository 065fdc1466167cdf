package postgres

import (
	"database/sql"
	"time"
)

type fighterTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	TotalFights   int            `db:"total_fights"`
	TotalRatings  int            `db:"total_ratings"`
	GreatFights   int            `db:"great_fights"`
	AverageRating float64        `db:"average_rating"`
	ProfileImage  sql.NullString `db:"profile_image"`
	ActionImage   sql.NullString `db:"action_image"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func nullStringToString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func stringToNullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
