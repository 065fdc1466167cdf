package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/fightpulse/fighter-dedup/internal/usecase"
)

func (h *Handler) runDetect(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(h.errOut)
	minSimilarity := fs.Float64("min-similarity", h.cfg.MinSimilarity, "minimum similarity on a 0..1 scale")
	workers := fs.Int("workers", h.cfg.MatchWorkers, "matcher worker pool size, 0 runs inline")
	output := fs.String("output", "", "also write the report as JSON to this path")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *minSimilarity < 0 || *minSimilarity > 1 {
		fmt.Fprintf(h.errOut, "--min-similarity must be within [0, 1], got %v\n", *minSimilarity)
		return 1
	}

	report, err := h.detect.Detect(ctx, usecase.DetectOptions{
		MinSimilarity: minSimilarity,
		Workers:       *workers,
		OutputPath:    *output,
	})
	if err != nil {
		fmt.Fprintf(h.errOut, "detect failed: %v\n", err)
		return 1
	}

	h.printReport(report)

	// Detection is advisory, so finding nothing is still success.
	return 0
}

func (h *Handler) printReport(report usecase.DetectReport) {
	if report.TotalDuplicates == 0 {
		fmt.Fprintln(h.out, "no duplicates found")
		return
	}

	fmt.Fprintf(h.out, "found %d possible duplicate pair(s) at min similarity %.2f\n\n",
		report.TotalDuplicates, report.MinSimilarity)

	for i, pair := range report.Duplicates {
		fmt.Fprintf(h.out, "%3d. %s %s (%s)  <->  %s %s (%s)\n",
			i+1,
			pair.First.FirstName, pair.First.LastName, pair.First.ID,
			pair.Second.FirstName, pair.Second.LastName, pair.Second.ID,
		)
		fmt.Fprintf(h.out, "     similarity %.2f, %s\n", pair.Similarity, pair.Reason)
		fmt.Fprintf(h.out, "     first:  %s\n", formatSide(pair.First))
		fmt.Fprintf(h.out, "     second: %s\n", formatSide(pair.Second))
		fmt.Fprintf(h.out, "     recommendation: %s\n\n", pair.Recommendation)
	}
}

func formatSide(side usecase.DuplicateSide) string {
	image := "no image"
	if side.HasImage {
		image = "has image"
	}

	return fmt.Sprintf("%d fights, %d ratings, %d follows, %s, created %s",
		side.Fights, side.Ratings, side.Follows, image, side.CreatedAt.Format("2006-01-02"))
}
