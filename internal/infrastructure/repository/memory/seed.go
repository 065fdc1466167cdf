package memory

import (
	"time"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fight"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/domain/follow"
)

// Fighter IDs the seed data uses; tests and local CLI runs reference these.
const (
	FighterIDJones      = "ftr-001"
	FighterIDJonesDupe  = "ftr-002"
	FighterIDAldo       = "ftr-003"
	FighterIDAldoDupe   = "ftr-004"
	FighterIDSilva      = "ftr-005"
	FighterIDShevchenko = "ftr-006"
)

var seedBase = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// SeedFighters returns a small roster containing two known duplicate pairs:
// a last-name typo ("Jonez") and a diacritic variant ("José"/"Jose").
func SeedFighters() []fighter.Fighter {
	return []fighter.Fighter{
		{
			ID:            FighterIDJones,
			FirstName:     "Jon",
			LastName:      "Jones",
			TotalFights:   10,
			TotalRatings:  50,
			GreatFights:   4,
			AverageRating: 8.0,
			ProfileImage:  "https://img.fightpulse.dev/jon-jones.jpg",
			CreatedAt:     seedBase,
		},
		{
			ID:            FighterIDJonesDupe,
			FirstName:     "Jon",
			LastName:      "Jonez",
			TotalFights:   5,
			TotalRatings:  20,
			GreatFights:   1,
			AverageRating: 6.0,
			CreatedAt:     seedBase.AddDate(0, 2, 0),
		},
		{
			ID:            FighterIDAldo,
			FirstName:     "José",
			LastName:      "Aldo",
			TotalFights:   8,
			TotalRatings:  31,
			GreatFights:   2,
			AverageRating: 7.4,
			ProfileImage:  "https://img.fightpulse.dev/jose-aldo.jpg",
			CreatedAt:     seedBase,
		},
		{
			ID:            FighterIDAldoDupe,
			FirstName:     "Jose",
			LastName:      "Aldo",
			TotalFights:   1,
			TotalRatings:  2,
			GreatFights:   0,
			AverageRating: 9.0,
			CreatedAt:     seedBase.AddDate(0, 5, 0),
		},
		{
			ID:            FighterIDSilva,
			FirstName:     "Anderson",
			LastName:      "Silva",
			TotalFights:   12,
			TotalRatings:  60,
			GreatFights:   6,
			AverageRating: 8.6,
			ProfileImage:  "https://img.fightpulse.dev/anderson-silva.jpg",
			CreatedAt:     seedBase,
		},
		{
			ID:            FighterIDShevchenko,
			FirstName:     "Valentina",
			LastName:      "Shevchenko",
			TotalFights:   9,
			TotalRatings:  44,
			GreatFights:   3,
			AverageRating: 8.2,
			CreatedAt:     seedBase,
		},
	}
}

func SeedFights() []fight.Fight {
	return []fight.Fight{
		{ID: "fgt-001", Fighter1ID: FighterIDJones, Fighter2ID: FighterIDSilva, EventName: "FP 100", HappenedAt: seedBase.AddDate(0, 1, 0)},
		{ID: "fgt-002", Fighter1ID: FighterIDSilva, Fighter2ID: FighterIDJonesDupe, EventName: "FP 101", HappenedAt: seedBase.AddDate(0, 3, 0)},
		{ID: "fgt-003", Fighter1ID: FighterIDAldo, Fighter2ID: FighterIDShevchenko, EventName: "FP 101", HappenedAt: seedBase.AddDate(0, 3, 0)},
		{ID: "fgt-004", Fighter1ID: FighterIDJonesDupe, Fighter2ID: FighterIDAldoDupe, EventName: "FP 102", HappenedAt: seedBase.AddDate(0, 6, 0)},
	}
}

func SeedFollows() []follow.Follow {
	return []follow.Follow{
		{ID: "flw-001", UserID: "user-1", FighterID: FighterIDJones, CreatedAt: seedBase},
		{ID: "flw-002", UserID: "user-1", FighterID: FighterIDJonesDupe, CreatedAt: seedBase.AddDate(0, 2, 0)},
		{ID: "flw-003", UserID: "user-2", FighterID: FighterIDJonesDupe, CreatedAt: seedBase.AddDate(0, 2, 0)},
		{ID: "flw-004", UserID: "user-3", FighterID: FighterIDAldo, CreatedAt: seedBase},
	}
}

func SeedAliases() []alias.Alias {
	return []alias.Alias{
		{ID: "als-001", FighterID: FighterIDAldo, FirstName: "José", LastName: "Aldo Junior", Source: "import:sherdog", CreatedAt: seedBase},
	}
}

// NewSeededStore builds a store preloaded with the demo dataset.
func NewSeededStore() *Store {
	return NewStore(SeedFighters(), SeedFights(), SeedFollows(), SeedAliases())
}
