package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fightpulse/fighter-dedup/internal/config"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/infrastructure/repository/memory"
	idgen "github.com/fightpulse/fighter-dedup/internal/platform/id"
	"github.com/fightpulse/fighter-dedup/internal/usecase"
)

type fixture struct {
	handler *Handler
	out     *bytes.Buffer
	errOut  *bytes.Buffer
}

func newFixture(store *memory.Store) fixture {
	cfg := config.Config{MinSimilarity: 0.85, KeepScoreMargin: 1.5}

	detect := usecase.NewDetectService(
		memory.NewFighterRepository(store),
		memory.NewFightRepository(store),
		memory.NewFollowRepository(store),
		cfg.KeepScoreMargin,
		nil,
	)
	merge := usecase.NewMergeService(
		memory.NewFighterRepository(store),
		memory.NewFightRepository(store),
		memory.NewFollowRepository(store),
		memory.NewAliasRepository(store),
		store,
		idgen.NewRandomGenerator(),
		nil,
	)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return fixture{
		handler: NewHandler(detect, merge, cfg, nil, out, errOut),
		out:     out,
		errOut:  errOut,
	}
}

func TestRun_NoCommandPrintsUsage(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	if code := fx.handler.Run(context.Background(), nil); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(fx.errOut.String(), "Usage:") {
		t.Fatalf("expected usage text, got %q", fx.errOut.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	if code := fx.handler.Run(context.Background(), []string{"purge"}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(fx.errOut.String(), `unknown command "purge"`) {
		t.Fatalf("unexpected error output: %q", fx.errOut.String())
	}
}

func TestDetect_PrintsNumberedReport(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	if code := fx.handler.Run(context.Background(), []string{"detect"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	output := fx.out.String()
	if !strings.Contains(output, "found 2 possible duplicate pair(s)") {
		t.Fatalf("missing report header: %q", output)
	}
	if !strings.Contains(output, "  1. ") || !strings.Contains(output, "  2. ") {
		t.Fatalf("report is not numbered: %q", output)
	}
	if !strings.Contains(output, "recommendation: keep_first") {
		t.Fatalf("missing recommendation line: %q", output)
	}
}

func TestDetect_EmptyDatasetExitsZero(t *testing.T) {
	fx := newFixture(memory.NewStore(nil, nil, nil, nil))

	if code := fx.handler.Run(context.Background(), []string{"detect"}); code != 0 {
		t.Fatalf("expected exit 0 when nothing is found, got %d", code)
	}
	if !strings.Contains(fx.out.String(), "no duplicates found") {
		t.Fatalf("unexpected output: %q", fx.out.String())
	}
}

func TestDetect_ZeroSimilarityFlagIsHonored(t *testing.T) {
	// A pair too weak for the configured 0.85 default.
	store := memory.NewStore(
		[]fighter.Fighter{
			{ID: "f-1", FirstName: "Jon", LastName: "Jones"},
			{ID: "f-2", FirstName: "Jod", LastName: "Jonas"},
		},
		nil, nil, nil,
	)
	fx := newFixture(store)

	if code := fx.handler.Run(context.Background(), []string{"detect", "--min-similarity", "0"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(fx.out.String(), "found 1 possible duplicate pair(s) at min similarity 0.00") {
		t.Fatalf("unexpected output: %q", fx.out.String())
	}
}

func TestDetect_RejectsSimilarityOutsideRange(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	if code := fx.handler.Run(context.Background(), []string{"detect", "--min-similarity", "1.5"}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestMerge_WrongArgumentCount(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	if code := fx.handler.Run(context.Background(), []string{"merge", memory.FighterIDJones}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(fx.errOut.String(), "usage: dedup merge") {
		t.Fatalf("unexpected error output: %q", fx.errOut.String())
	}
}

func TestMerge_SelfMergeExitsOne(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	code := fx.handler.Run(context.Background(), []string{"merge", memory.FighterIDJones, memory.FighterIDJones})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(fx.errOut.String(), "invalid merge request") {
		t.Fatalf("unexpected error output: %q", fx.errOut.String())
	}
}

func TestMerge_MissingFighterExitsOne(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	code := fx.handler.Run(context.Background(), []string{"merge", memory.FighterIDJones, "ftr-404"})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(fx.errOut.String(), "ftr-404") {
		t.Fatalf("expected missing id in output: %q", fx.errOut.String())
	}
}

func TestMerge_SuccessPrintsSummary(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	code := fx.handler.Run(context.Background(), []string{"merge", memory.FighterIDJones, memory.FighterIDJonesDupe})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, fx.errOut.String())
	}

	output := fx.out.String()
	if !strings.Contains(output, "merge complete") {
		t.Fatalf("missing completion line: %q", output)
	}
	if !strings.Contains(output, `"fightsTransferred": 2`) {
		t.Fatalf("missing transfer counts: %q", output)
	}
}

func TestMerge_DryRunExitsZeroAndFlagPositionIsFree(t *testing.T) {
	fx := newFixture(memory.NewSeededStore())

	code := fx.handler.Run(context.Background(), []string{"merge", "--dry-run", memory.FighterIDJones, memory.FighterIDJonesDupe})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, fx.errOut.String())
	}
	if !strings.Contains(fx.out.String(), "dry run complete") {
		t.Fatalf("missing dry run line: %q", fx.out.String())
	}
}
