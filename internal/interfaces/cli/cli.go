// Package cli implements the operator-facing command surface of the dedup
// tool.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fightpulse/fighter-dedup/internal/config"
	"github.com/fightpulse/fighter-dedup/internal/platform/logging"
	"github.com/fightpulse/fighter-dedup/internal/usecase"
)

const usageText = `Usage:
  dedup detect [--min-similarity <0..1>] [--workers <n>] [--output <path>]
  dedup merge <keepId> <discardId> [--dry-run]
`

// Handler dispatches parsed commands onto the services.
type Handler struct {
	detect *usecase.DetectService
	merge  *usecase.MergeService
	cfg    config.Config
	logger *logging.Logger
	out    io.Writer
	errOut io.Writer
}

func NewHandler(
	detect *usecase.DetectService,
	merge *usecase.MergeService,
	cfg config.Config,
	logger *logging.Logger,
	out io.Writer,
	errOut io.Writer,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		detect: detect,
		merge:  merge,
		cfg:    cfg,
		logger: logger,
		out:    out,
		errOut: errOut,
	}
}

// Run executes one command and returns the process exit code.
func (h *Handler) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(h.errOut, usageText)
		return 1
	}

	switch args[0] {
	case "detect":
		return h.runDetect(ctx, args[1:])
	case "merge":
		return h.runMerge(ctx, args[1:])
	default:
		fmt.Fprintf(h.errOut, "unknown command %q\n%s", args[0], usageText)
		return 1
	}
}
