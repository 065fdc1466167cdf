package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/infrastructure/repository/memory"
	idgen "github.com/fightpulse/fighter-dedup/internal/platform/id"
)

func newMergeFixture(store *memory.Store) *MergeService {
	return NewMergeService(
		memory.NewFighterRepository(store),
		memory.NewFightRepository(store),
		memory.NewFollowRepository(store),
		memory.NewAliasRepository(store),
		store,
		idgen.NewRandomGenerator(),
		nil,
	)
}

func TestMerge_ReconcilesAggregates(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)
	ctx := context.Background()

	result, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	if result.Totals.TotalFights != 15 {
		t.Fatalf("unexpected total fights: %d", result.Totals.TotalFights)
	}
	if result.Totals.TotalRatings != 70 {
		t.Fatalf("unexpected total ratings: %d", result.Totals.TotalRatings)
	}
	if result.Totals.GreatFights != 5 {
		t.Fatalf("unexpected great fights: %d", result.Totals.GreatFights)
	}

	// (8.0*50 + 6.0*20) / 70
	wantAvg := 52.0 / 7.0
	if math.Abs(result.Totals.AverageRating-wantAvg) > 1e-9 {
		t.Fatalf("unexpected average rating: got %v want %v", result.Totals.AverageRating, wantAvg)
	}

	kept, ok, err := memory.NewFighterRepository(store).GetByID(ctx, memory.FighterIDJones)
	if err != nil || !ok {
		t.Fatalf("load kept fighter: ok=%t err=%v", ok, err)
	}
	if kept.TotalFights != 15 || kept.TotalRatings != 70 {
		t.Fatalf("kept fighter aggregates not persisted: %+v", kept)
	}
}

func TestMerge_TransfersEveryFight(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)
	ctx := context.Background()

	fightRepo := memory.NewFightRepository(store)
	before, err := fightRepo.CountForFighter(ctx, memory.FighterIDJones)
	if err != nil {
		t.Fatalf("count fights before: %v", err)
	}
	discarded, err := fightRepo.CountForFighter(ctx, memory.FighterIDJonesDupe)
	if err != nil {
		t.Fatalf("count discarded fights: %v", err)
	}

	result, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if result.FightsTransferred != int64(discarded) {
		t.Fatalf("expected %d fights transferred, got %d", discarded, result.FightsTransferred)
	}

	after, err := fightRepo.CountForFighter(ctx, memory.FighterIDJones)
	if err != nil {
		t.Fatalf("count fights after: %v", err)
	}
	if after != before+discarded {
		t.Fatalf("fight count mismatch: before=%d discarded=%d after=%d", before, discarded, after)
	}

	orphaned, err := fightRepo.CountForFighter(ctx, memory.FighterIDJonesDupe)
	if err != nil {
		t.Fatalf("count orphaned fights: %v", err)
	}
	if orphaned != 0 {
		t.Fatalf("expected no fights left on discarded id, got %d", orphaned)
	}
}

func TestMerge_DeduplicatesFollows(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)
	ctx := context.Background()

	// user-1 follows both sides in the seed data, so one row must be dropped
	// instead of moved.
	result, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if result.FollowsDeduplicated != 1 {
		t.Fatalf("expected 1 deduplicated follow, got %d", result.FollowsDeduplicated)
	}
	if result.FollowsTransferred != 1 {
		t.Fatalf("expected 1 transferred follow, got %d", result.FollowsTransferred)
	}

	follows, err := memory.NewFollowRepository(store).CountForFighter(ctx, memory.FighterIDJones)
	if err != nil {
		t.Fatalf("count follows: %v", err)
	}
	if follows != 2 {
		t.Fatalf("expected kept fighter to have 2 followers, got %d", follows)
	}
}

func TestMerge_RecordsAliasForDiscardedName(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)
	ctx := context.Background()

	result, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !result.AliasCreated {
		t.Fatalf("expected an alias for the discarded name")
	}

	got, ok, err := memory.NewAliasRepository(store).GetByName(ctx, "Jon", "Jonez")
	if err != nil || !ok {
		t.Fatalf("load alias: ok=%t err=%v", ok, err)
	}
	if got.FighterID != memory.FighterIDJones {
		t.Fatalf("alias points at %s, want %s", got.FighterID, memory.FighterIDJones)
	}
	if got.Source != aliasSourceMerge {
		t.Fatalf("unexpected alias source: %q", got.Source)
	}
}

func TestMerge_AliasCreationIsIdempotent(t *testing.T) {
	store := memory.NewStore(
		memory.SeedFighters(),
		nil,
		nil,
		[]alias.Alias{{ID: "als-existing", FighterID: memory.FighterIDJones, FirstName: "Jon", LastName: "Jonez", Source: "import:sherdog"}},
	)
	svc := newMergeFixture(store)
	ctx := context.Background()

	result, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if result.AliasCreated {
		t.Fatalf("expected no new alias when the name pair already exists")
	}
}

func TestMerge_SkipsAliasForNamelessDiscard(t *testing.T) {
	store := memory.NewStore(
		[]fighter.Fighter{
			{ID: "keep-1", FirstName: "Jon", LastName: "Jones"},
			{ID: "discard-1"},
		},
		nil, nil, nil,
	)
	svc := newMergeFixture(store)

	result, err := svc.Merge(context.Background(), MergeInput{KeepID: "keep-1", DiscardID: "discard-1"})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if result.AliasCreated {
		t.Fatalf("expected no alias for an empty name pair")
	}
}

func TestMerge_DeletesDiscardedFighter(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)
	ctx := context.Background()

	if _, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	_, ok, err := memory.NewFighterRepository(store).GetByID(ctx, memory.FighterIDJonesDupe)
	if err != nil {
		t.Fatalf("load discarded fighter: %v", err)
	}
	if ok {
		t.Fatalf("discarded fighter still present after merge")
	}
}

func TestMerge_DryRunLeavesStorageUntouched(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)
	ctx := context.Background()

	fighterRepo := memory.NewFighterRepository(store)
	before, err := fighterRepo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list before: %v", err)
	}

	result, err := svc.Merge(ctx, MergeInput{KeepID: memory.FighterIDJones, DiscardID: memory.FighterIDJonesDupe, DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if !result.DryRun {
		t.Fatalf("result not flagged as dry run")
	}
	if result.FightsTransferred != 2 {
		t.Fatalf("expected 2 fights reported, got %d", result.FightsTransferred)
	}
	if !result.AliasCreated {
		t.Fatalf("expected dry run to report a new alias")
	}

	after, err := fighterRepo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list after: %v", err)
	}
	if len(before) != len(after) {
		t.Fatalf("dry run changed fighter count: before=%d after=%d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("dry run mutated fighter %s", before[i].ID)
		}
	}
}

func TestMerge_MissingFighterFailsWithNotFound(t *testing.T) {
	store := memory.NewSeededStore()
	svc := newMergeFixture(store)

	_, err := svc.Merge(context.Background(), MergeInput{KeepID: memory.FighterIDJones, DiscardID: "ftr-999"})
	if !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMerge_CorruptAggregatesFailValidation(t *testing.T) {
	// A negative counter on either side makes the merged record invalid, so
	// the merge must stop before any storage mutation.
	store := memory.NewStore(
		[]fighter.Fighter{
			{ID: "keep-1", FirstName: "Jon", LastName: "Jones", TotalRatings: -10},
			{ID: "discard-1", FirstName: "Jon", LastName: "Jonez"},
		},
		nil, nil, nil,
	)
	svc := newMergeFixture(store)
	ctx := context.Background()

	_, err := svc.Merge(ctx, MergeInput{KeepID: "keep-1", DiscardID: "discard-1"})
	if !IsInvalidInput(err) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, ok, err := memory.NewFighterRepository(store).GetByID(ctx, "discard-1")
	if err != nil {
		t.Fatalf("load discard fighter: %v", err)
	}
	if !ok {
		t.Fatalf("rejected merge still deleted the discard fighter")
	}
}

func TestMerge_BlankIDsFailValidation(t *testing.T) {
	svc := newMergeFixture(memory.NewSeededStore())

	_, err := svc.Merge(context.Background(), MergeInput{KeepID: "  ", DiscardID: memory.FighterIDJones})
	if !IsInvalidInput(err) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
