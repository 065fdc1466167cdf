package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fightpulse/fighter-dedup/internal/domain/alias"
	"github.com/fightpulse/fighter-dedup/internal/domain/fight"
	"github.com/fightpulse/fighter-dedup/internal/domain/fighter"
	"github.com/fightpulse/fighter-dedup/internal/domain/follow"
	"github.com/fightpulse/fighter-dedup/internal/domain/merge"
	idgen "github.com/fightpulse/fighter-dedup/internal/platform/id"
	"github.com/fightpulse/fighter-dedup/internal/platform/logging"
)

// aliasSourceMerge marks alias rows created by the merge operation.
const aliasSourceMerge = "merge"

// MergeInput identifies the surviving and discarded fighters.
type MergeInput struct {
	KeepID    string
	DiscardID string
	// DryRun reports what would change without mutating storage.
	DryRun bool
}

// MergeTotals are the surviving record's aggregates after reconciliation.
type MergeTotals struct {
	TotalFights   int     `json:"totalFights"`
	TotalRatings  int     `json:"totalRatings"`
	GreatFights   int     `json:"greatFights"`
	AverageRating float64 `json:"averageRating"`
}

// MergeResult summarizes an executed (or simulated) merge for audit logging.
type MergeResult struct {
	KeepID              string      `json:"keepId"`
	DiscardID           string      `json:"discardId"`
	KeptName            string      `json:"keptName"`
	DiscardedName       string      `json:"discardedName"`
	FightsTransferred   int64       `json:"fightsTransferred"`
	FollowsTransferred  int64       `json:"followsTransferred"`
	FollowsDeduplicated int64       `json:"followsDeduplicated"`
	AliasCreated        bool        `json:"aliasCreated"`
	Totals              MergeTotals `json:"totals"`
	DryRun              bool        `json:"dryRun"`
}

// MergeService consolidates one fighter into another: every relationship
// moves to the kept record, aggregates are reconciled, an alias preserves
// the discarded name, and the discarded record is deleted. The mutating
// steps run inside a single merge.Store scope, so a failure anywhere leaves
// storage untouched.
type MergeService struct {
	fighterRepo fighter.Repository
	fightRepo   fight.Repository
	followRepo  follow.Repository
	aliasRepo   alias.Repository
	store       merge.Store
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewMergeService(
	fighterRepo fighter.Repository,
	fightRepo fight.Repository,
	followRepo follow.Repository,
	aliasRepo alias.Repository,
	store merge.Store,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MergeService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MergeService{
		fighterRepo: fighterRepo,
		fightRepo:   fightRepo,
		followRepo:  followRepo,
		aliasRepo:   aliasRepo,
		store:       store,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// Merge validates the pair, then either simulates (dry run) or executes the
// merge transaction. Existence checks happen before the transaction opens;
// the transaction covers exactly the mutating steps.
func (s *MergeService) Merge(ctx context.Context, input MergeInput) (MergeResult, error) {
	keepID := strings.TrimSpace(input.KeepID)
	discardID := strings.TrimSpace(input.DiscardID)

	if keepID == "" || discardID == "" {
		return MergeResult{}, errors.Mark(errors.New("both keep and discard ids are required"), ErrInvalidInput)
	}
	if keepID == discardID {
		return MergeResult{}, errors.Mark(errors.Newf("cannot merge fighter %s into itself", keepID), ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "merge_fighters")
	defer span.End()

	keep, ok, err := s.fighterRepo.GetByID(ctx, keepID)
	if err != nil {
		return MergeResult{}, errors.Wrapf(err, "load fighter %s", keepID)
	}
	if !ok {
		return MergeResult{}, errors.Mark(errors.Newf("fighter %s not found", keepID), ErrNotFound)
	}

	discard, ok, err := s.fighterRepo.GetByID(ctx, discardID)
	if err != nil {
		return MergeResult{}, errors.Wrapf(err, "load fighter %s", discardID)
	}
	if !ok {
		return MergeResult{}, errors.Mark(errors.Newf("fighter %s not found", discardID), ErrNotFound)
	}

	merged := combineFighters(keep, discard)
	if err := merged.Validate(); err != nil {
		return MergeResult{}, errors.Mark(errors.Wrap(err, "merged fighter"), ErrInvalidInput)
	}

	result := MergeResult{
		KeepID:        keepID,
		DiscardID:     discardID,
		KeptName:      keep.FullName(),
		DiscardedName: discard.FullName(),
		DryRun:        input.DryRun,
		Totals: MergeTotals{
			TotalFights:   merged.TotalFights,
			TotalRatings:  merged.TotalRatings,
			GreatFights:   merged.GreatFights,
			AverageRating: merged.AverageRating,
		},
	}

	if input.DryRun {
		return s.simulate(ctx, discard, result)
	}

	err = s.store.WithinMerge(ctx, func(ops merge.Ops) error {
		fights, err := ops.ReassignFights(ctx, discardID, keepID)
		if err != nil {
			return errors.Wrap(err, "reassign fights")
		}
		result.FightsTransferred = fights

		moved, duplicates, err := ops.ReassignFollows(ctx, discardID, keepID)
		if err != nil {
			return errors.Wrap(err, "reassign follows")
		}
		result.FollowsTransferred = moved
		result.FollowsDeduplicated = duplicates

		if _, err := ops.ReassignAliases(ctx, discardID, keepID); err != nil {
			return errors.Wrap(err, "reassign aliases")
		}

		created, err := s.recordAlias(ctx, ops, keepID, discard)
		if err != nil {
			return errors.Wrap(err, "record alias")
		}
		result.AliasCreated = created

		if err := ops.UpdateFighter(ctx, merged); err != nil {
			return errors.Wrap(err, "update kept fighter")
		}

		if err := ops.DeleteFighter(ctx, discardID); err != nil {
			return errors.Wrap(err, "delete discarded fighter")
		}

		return nil
	})
	if err != nil {
		return MergeResult{}, errors.Mark(err, ErrTransaction)
	}

	s.logger.InfoContext(ctx, "fighters merged",
		"keep_id", keepID,
		"discard_id", discardID,
		"kept_name", result.KeptName,
		"discarded_name", result.DiscardedName,
		"fights_transferred", result.FightsTransferred,
		"follows_transferred", result.FollowsTransferred,
		"follows_deduplicated", result.FollowsDeduplicated,
		"alias_created", result.AliasCreated,
	)

	return result, nil
}

// simulate fills the transfer counts from read-only lookups. The follow
// count is an upper bound: duplicates are only discovered inside the real
// transaction.
func (s *MergeService) simulate(ctx context.Context, discard fighter.Fighter, result MergeResult) (MergeResult, error) {
	fights, err := s.fightRepo.CountForFighter(ctx, discard.ID)
	if err != nil {
		return MergeResult{}, errors.Wrapf(err, "count fights for fighter %s", discard.ID)
	}
	follows, err := s.followRepo.CountForFighter(ctx, discard.ID)
	if err != nil {
		return MergeResult{}, errors.Wrapf(err, "count follows for fighter %s", discard.ID)
	}

	result.FightsTransferred = int64(fights)
	result.FollowsTransferred = int64(follows)

	if discard.FullName() != "" {
		_, exists, err := s.aliasRepo.GetByName(ctx, discard.FirstName, discard.LastName)
		if err != nil {
			return MergeResult{}, errors.Wrap(err, "check alias")
		}
		result.AliasCreated = !exists
	}

	return result, nil
}

// recordAlias preserves the discarded fighter's pre-merge name unless an
// alias with that exact pair already exists. Records with no name at all
// get no alias; an empty name pair resolves nothing on future imports.
func (s *MergeService) recordAlias(ctx context.Context, ops merge.Ops, keepID string, discard fighter.Fighter) (bool, error) {
	if discard.FullName() == "" {
		return false, nil
	}

	exists, err := ops.AliasExists(ctx, discard.FirstName, discard.LastName)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	aliasID, err := s.idGen.NewID()
	if err != nil {
		return false, errors.Wrap(err, "generate alias id")
	}

	return ops.CreateAlias(ctx, alias.Alias{
		ID:        aliasID,
		FighterID: keepID,
		FirstName: discard.FirstName,
		LastName:  discard.LastName,
		Source:    aliasSourceMerge,
		CreatedAt: s.now().UTC(),
	})
}

// combineFighters folds the discarded record's aggregates into the kept
// one: sums for counters, ratings-weighted mean for the average. With zero
// combined ratings the kept average stands, avoiding a division by zero.
// Media slots are only filled, never overwritten.
func combineFighters(keep, discard fighter.Fighter) fighter.Fighter {
	out := keep
	out.TotalFights += discard.TotalFights
	out.TotalRatings += discard.TotalRatings
	out.GreatFights += discard.GreatFights

	combinedRatings := keep.TotalRatings + discard.TotalRatings
	if combinedRatings > 0 {
		weighted := keep.AverageRating*float64(keep.TotalRatings) +
			discard.AverageRating*float64(discard.TotalRatings)
		out.AverageRating = weighted / float64(combinedRatings)
	}

	if out.ProfileImage == "" {
		out.ProfileImage = discard.ProfileImage
	}
	if out.ActionImage == "" {
		out.ActionImage = discard.ActionImage
	}

	return out
}
