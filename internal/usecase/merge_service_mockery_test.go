package usecase

import (
	"context"
	"testing"

	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	aliasmock "github.com/fightpulse/fighter-dedup/internal/mocks/domain/alias"
	fightmock "github.com/fightpulse/fighter-dedup/internal/mocks/domain/fight"
	fightermock "github.com/fightpulse/fighter-dedup/internal/mocks/domain/fighter"
	followmock "github.com/fightpulse/fighter-dedup/internal/mocks/domain/follow"
	"github.com/fightpulse/fighter-dedup/internal/infrastructure/repository/memory"
	idgen "github.com/fightpulse/fighter-dedup/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func newMockedMergeService(t *testing.T) (*MergeService, *fightermock.Repository) {
	t.Helper()

	fighterRepo := fightermock.NewRepository(t)
	fightRepo := fightmock.NewRepository(t)
	followRepo := followmock.NewRepository(t)
	aliasRepo := aliasmock.NewRepository(t)

	svc := NewMergeService(
		fighterRepo,
		fightRepo,
		followRepo,
		aliasRepo,
		memory.NewSeededStore(),
		idgen.NewRandomGenerator(),
		nil,
	)

	return svc, fighterRepo
}

func TestMerge_SelfMergePerformsNoStorageReadsUsingMockery(t *testing.T) {
	t.Parallel()

	// No expectations registered: any repository call fails the test.
	svc, _ := newMockedMergeService(t)

	_, err := svc.Merge(context.Background(), MergeInput{KeepID: "ftr-001", DiscardID: "ftr-001"})
	if !IsInvalidInput(err) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMerge_MissingKeepAbortsBeforeDiscardLookupUsingMockery(t *testing.T) {
	t.Parallel()

	svc, fighterRepo := newMockedMergeService(t)

	fighterRepo.
		On("GetByID", mock.Anything, "ftr-404").
		Return(fighter.Fighter{}, false, nil).
		Once()

	_, err := svc.Merge(context.Background(), MergeInput{KeepID: "ftr-404", DiscardID: "ftr-001"})
	if !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
