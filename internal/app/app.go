package app

import (
	"context"
	"fmt"

	"github.com/fightpulse/fighter-dedup/internal/config"
	"github.com/fightpulse/fighter-dedup/internal/infrastructure/repository/memory"
	"github.com/fightpulse/fighter-dedup/internal/infrastructure/repository/postgres"
	idgen "github.com/fightpulse/fighter-dedup/internal/platform/id"
	"github.com/fightpulse/fighter-dedup/internal/platform/logging"
	"github.com/fightpulse/fighter-dedup/internal/usecase"
)

// App bundles the wired services behind a single close handle.
type App struct {
	Detect *usecase.DetectService
	Merge  *usecase.MergeService

	closeDB func() error
}

// New wires repositories and services. An empty DB_URL selects the seeded
// in-memory dataset, which is enough to exercise every command locally.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.UseMemoryBackend() {
		logger.Info("using in-memory dataset", "reason", "DB_URL empty")

		store := memory.NewSeededStore()
		fighterRepo := memory.NewFighterRepository(store)
		fightRepo := memory.NewFightRepository(store)
		followRepo := memory.NewFollowRepository(store)
		aliasRepo := memory.NewAliasRepository(store)

		return &App{
			Detect: usecase.NewDetectService(fighterRepo, fightRepo, followRepo, cfg.KeepScoreMargin, logger),
			Merge: usecase.NewMergeService(
				fighterRepo,
				fightRepo,
				followRepo,
				aliasRepo,
				store,
				idgen.NewRandomGenerator(),
				logger,
			),
			closeDB: func() error { return nil },
		}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	fighterRepo := postgres.NewFighterRepository(db)
	fightRepo := postgres.NewFightRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	aliasRepo := postgres.NewAliasRepository(db)
	mergeStore := postgres.NewMergeStore(db)

	return &App{
		Detect: usecase.NewDetectService(fighterRepo, fightRepo, followRepo, cfg.KeepScoreMargin, logger),
		Merge: usecase.NewMergeService(
			fighterRepo,
			fightRepo,
			followRepo,
			aliasRepo,
			mergeStore,
			idgen.NewRandomGenerator(),
			logger,
		),
		closeDB: db.Close,
	}, nil
}

func (a *App) Close() error {
	return a.closeDB()
}
