package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fightpulse/fighter-dedup/internal/domain/fight"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/domain/follow"
	"github.com/fightpulse/fighter-dedup/internal/matcher"
	"github.com/fightpulse/fighter-dedup/internal/platform/logging"
)

// DefaultKeepScoreMargin is the factor by which one side's keep score must
// exceed the other's before detect recommends a side instead of review.
const DefaultKeepScoreMargin = 1.5

// Recommendation values for a duplicate pair.
const (
	RecommendKeepFirst  = "keep_first"
	RecommendKeepSecond = "keep_second"
	RecommendReview     = "review"
)

// DetectOptions configures a detection run.
type DetectOptions struct {
	// MinSimilarity on a 0..1 scale; nil means the matcher default. An
	// explicit 0 emits every bucketed pair.
	MinSimilarity *float64
	// Workers sizes the matcher scoring pool.
	Workers int
	// OutputPath, when set, additionally writes the report as JSON.
	OutputPath string
}

// DuplicateSide is one fighter of a candidate pair, enriched with the
// secondary signals a reviewer weighs.
type DuplicateSide struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Fights    int       `json:"fights"`
	Ratings   int       `json:"ratings"`
	Follows   int       `json:"follows"`
	HasImage  bool      `json:"hasImage"`
	CreatedAt time.Time `json:"createdAt"`
}

// DuplicatePair is one reviewable candidate in the report.
type DuplicatePair struct {
	First          DuplicateSide `json:"first"`
	Second         DuplicateSide `json:"second"`
	Similarity     float64       `json:"similarity"`
	Reason         string        `json:"reason"`
	Recommendation string        `json:"recommendation"`
}

// DetectReport is the advisory output of a detection run. It is never
// persisted unless OutputPath was given.
type DetectReport struct {
	GeneratedAt     time.Time       `json:"generatedAt"`
	MinSimilarity   float64         `json:"minSimilarity"`
	TotalDuplicates int             `json:"totalDuplicates"`
	Duplicates      []DuplicatePair `json:"duplicates"`
}

// DetectService finds likely duplicate fighters and recommends which side to
// keep. It is read-only: nothing in the datastore changes.
type DetectService struct {
	fighterRepo fighter.Repository
	fightRepo   fight.Repository
	followRepo  follow.Repository
	keepMargin  float64
	logger      *logging.Logger
	now         func() time.Time
}

func NewDetectService(
	fighterRepo fighter.Repository,
	fightRepo fight.Repository,
	followRepo follow.Repository,
	keepScoreMargin float64,
	logger *logging.Logger,
) *DetectService {
	if keepScoreMargin <= 1 {
		keepScoreMargin = DefaultKeepScoreMargin
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DetectService{
		fighterRepo: fighterRepo,
		fightRepo:   fightRepo,
		followRepo:  followRepo,
		keepMargin:  keepScoreMargin,
		logger:      logger,
		now:         time.Now,
	}
}

// Detect runs the matcher over the full fighter set and enriches every
// candidate pair with fight count, rating count, follow count, has-image,
// and creation date.
func (s *DetectService) Detect(ctx context.Context, opts DetectOptions) (DetectReport, error) {
	ctx, span := startUsecaseSpan(ctx, "detect_duplicates")
	defer span.End()

	fighters, err := s.fighterRepo.ListAll(ctx)
	if err != nil {
		return DetectReport{}, fmt.Errorf("list fighters: %w", err)
	}

	byID := make(map[string]fighter.Fighter, len(fighters))
	records := make([]matcher.Record, 0, len(fighters))
	for _, f := range fighters {
		byID[f.ID] = f
		records = append(records, matcher.Record{
			ID:        f.ID,
			FirstName: f.FirstName,
			LastName:  f.LastName,
		})
	}

	minSimilarity := matcher.DefaultMinSimilarity
	if opts.MinSimilarity != nil {
		minSimilarity = *opts.MinSimilarity
	}

	candidates, err := matcher.FindCandidates(records, matcher.Options{
		MinSimilarity: &minSimilarity,
		Workers:       opts.Workers,
	})
	if err != nil {
		return DetectReport{}, fmt.Errorf("match fighters: %w", err)
	}

	report := DetectReport{
		GeneratedAt:     s.now().UTC(),
		MinSimilarity:   minSimilarity,
		TotalDuplicates: len(candidates),
		Duplicates:      make([]DuplicatePair, 0, len(candidates)),
	}

	for _, cand := range candidates {
		first, err := s.enrichSide(ctx, byID[cand.A.ID])
		if err != nil {
			return DetectReport{}, err
		}
		second, err := s.enrichSide(ctx, byID[cand.B.ID])
		if err != nil {
			return DetectReport{}, err
		}

		report.Duplicates = append(report.Duplicates, DuplicatePair{
			First:          first,
			Second:         second,
			Similarity:     cand.Score,
			Reason:         cand.Reason,
			Recommendation: s.recommend(first, second),
		})
	}

	if opts.OutputPath != "" {
		if err := writeReportFile(opts.OutputPath, report); err != nil {
			return DetectReport{}, err
		}
	}

	s.logger.InfoContext(ctx, "duplicate detection finished",
		"fighters", len(fighters),
		"candidates", len(candidates),
		"min_similarity", minSimilarity,
	)

	return report, nil
}

func (s *DetectService) enrichSide(ctx context.Context, f fighter.Fighter) (DuplicateSide, error) {
	fights, err := s.fightRepo.CountForFighter(ctx, f.ID)
	if err != nil {
		return DuplicateSide{}, fmt.Errorf("count fights for fighter %s: %w", f.ID, err)
	}
	follows, err := s.followRepo.CountForFighter(ctx, f.ID)
	if err != nil {
		return DuplicateSide{}, fmt.Errorf("count follows for fighter %s: %w", f.ID, err)
	}

	return DuplicateSide{
		ID:        f.ID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Fights:    fights,
		Ratings:   f.TotalRatings,
		Follows:   follows,
		HasImage:  f.HasImage(),
		CreatedAt: f.CreatedAt,
	}, nil
}

// recommend keeps the clearly richer record; when the keep scores are within
// the margin of each other the pair stays with a human.
func (s *DetectService) recommend(first, second DuplicateSide) string {
	a := float64(keepScore(first))
	b := float64(keepScore(second))

	switch {
	case a > b*s.keepMargin:
		return RecommendKeepFirst
	case b > a*s.keepMargin:
		return RecommendKeepSecond
	default:
		return RecommendReview
	}
}

// keepScore weighs fight history heaviest, then ratings, with a flat bonus
// for having any image.
func keepScore(side DuplicateSide) int {
	score := side.Fights*10 + side.Ratings
	if side.HasImage {
		score += 50
	}
	return score
}

func writeReportFile(path string, report DetectReport) error {
	payload, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode detect report: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write detect report: %w", err)
	}

	return nil
}
