package cli

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/fightpulse/fighter-dedup/internal/usecase"
)

func (h *Handler) runMerge(ctx context.Context, args []string) int {
	input, ok := parseMergeArgs(args)
	if !ok {
		fmt.Fprintf(h.errOut, "usage: dedup merge <keepId> <discardId> [--dry-run]\n")
		return 1
	}

	if input.DryRun {
		fmt.Fprintf(h.out, "dry run: merging %s into %s, storage will not change\n", input.DiscardID, input.KeepID)
	} else {
		fmt.Fprintf(h.out, "merging %s into %s\n", input.DiscardID, input.KeepID)
	}

	result, err := h.merge.Merge(ctx, input)
	if err != nil {
		switch {
		case usecase.IsInvalidInput(err):
			fmt.Fprintf(h.errOut, "invalid merge request: %v\n", err)
		case usecase.IsNotFound(err):
			fmt.Fprintf(h.errOut, "merge aborted: %v\n", err)
		case usecase.IsTransaction(err):
			fmt.Fprintf(h.errOut, "merge transaction rolled back: %v\n", err)
		default:
			fmt.Fprintf(h.errOut, "merge failed: %v\n", err)
		}
		return 1
	}

	h.printMergeResult(result)

	return 0
}

// parseMergeArgs accepts the dry-run flag in any position around the two ids.
func parseMergeArgs(args []string) (usecase.MergeInput, bool) {
	var input usecase.MergeInput
	positionals := make([]string, 0, 2)

	for _, arg := range args {
		switch arg {
		case "--dry-run", "-dry-run":
			input.DryRun = true
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) != 2 {
		return usecase.MergeInput{}, false
	}

	input.KeepID = positionals[0]
	input.DiscardID = positionals[1]

	return input, true
}

func (h *Handler) printMergeResult(result usecase.MergeResult) {
	if result.DryRun {
		fmt.Fprintf(h.out, "dry run complete: %q would absorb %q\n", result.KeptName, result.DiscardedName)
	} else {
		fmt.Fprintf(h.out, "merge complete: %q absorbed %q\n", result.KeptName, result.DiscardedName)
	}

	summary, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(h.errOut, "encode merge summary: %v\n", err)
		return
	}

	fmt.Fprintf(h.out, "%s\n", summary)
}
