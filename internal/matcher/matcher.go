// Package matcher finds likely-duplicate fighter records by fuzzy name
// comparison. It is pure: no storage access, no domain errors for odd input.
package matcher

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
)

// DefaultMinSimilarity is the emit threshold used when Options leaves
// MinSimilarity unset.
const DefaultMinSimilarity = 0.85

// bucketPrefixLen is how many leading runes of a normalized name part form
// the coarse pre-filter key. Short keys keep recall high; the expensive
// comparison only runs within a bucket.
const bucketPrefixLen = 3

// Record is the projection of a fighter the matcher needs.
type Record struct {
	ID        string
	FirstName string
	LastName  string
}

// Candidate is an unordered pair of records scored as likely duplicates.
// A and B are canonically ordered by ID.
type Candidate struct {
	A      Record
	B      Record
	Score  float64
	Reason string
}

// Options configures a matching run.
type Options struct {
	// MinSimilarity is the inclusive emit threshold on a 0..1 scale. Nil
	// means DefaultMinSimilarity; an explicit 0 emits every bucketed pair.
	MinSimilarity *float64 `validate:"omitempty,gte=0,lte=1"`
	// Workers sizes the bucket-scoring pool. Values below 2 run inline.
	Workers int `validate:"gte=0"`
}

// Threshold wraps a literal threshold for Options.MinSimilarity.
func Threshold(v float64) *float64 {
	return &v
}

var validate = validator.New()

type entry struct {
	rec      Record
	first    string
	last     string
	full     string
	stripped string
	reversed string
}

// FindCandidates scores every bucketed pair of records and returns those at
// or above the similarity threshold, deduplicated by unordered ID pair and
// sorted by score descending. A record is never paired with itself, and
// records whose normalized name is entirely empty are never paired at all.
func FindCandidates(records []Record, opts Options) ([]Candidate, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid matcher options: %w", err)
	}

	minSimilarity := DefaultMinSimilarity
	if opts.MinSimilarity != nil {
		minSimilarity = *opts.MinSimilarity
	}

	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		first := NormalizeName(rec.FirstName)
		last := NormalizeName(rec.LastName)
		full := joinName(first, last)
		if full == "" {
			// Nothing to compare on; pairing empty names would only
			// produce false positives.
			continue
		}
		entries = append(entries, entry{
			rec:      rec,
			first:    first,
			last:     last,
			full:     full,
			stripped: stripNameSuffix(full),
			reversed: joinName(last, first),
		})
	}

	buckets := buildBuckets(entries)

	var (
		mu         sync.Mutex
		seen       = make(map[string]struct{})
		candidates []Candidate
	)

	scoreBucket := func(indexes []int) {
		for i := 0; i < len(indexes); i++ {
			for j := i + 1; j < len(indexes); j++ {
				a, b := entries[indexes[i]], entries[indexes[j]]
				if a.rec.ID == b.rec.ID {
					continue
				}

				key := pairKey(a.rec.ID, b.rec.ID)
				mu.Lock()
				if _, dup := seen[key]; dup {
					mu.Unlock()
					continue
				}
				seen[key] = struct{}{}
				mu.Unlock()

				score, reason := scorePair(a, b)
				if score < minSimilarity {
					continue
				}

				cand := Candidate{A: a.rec, B: b.rec, Score: score, Reason: reason}
				if cand.A.ID > cand.B.ID {
					cand.A, cand.B = cand.B, cand.A
				}

				mu.Lock()
				candidates = append(candidates, cand)
				mu.Unlock()
			}
		}
	}

	if err := runBuckets(buckets, opts.Workers, scoreBucket); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].A.ID != candidates[j].A.ID {
			return candidates[i].A.ID < candidates[j].A.ID
		}
		return candidates[i].B.ID < candidates[j].B.ID
	})

	return candidates, nil
}

func runBuckets(buckets [][]int, workers int, scoreBucket func([]int)) error {
	if workers < 2 || len(buckets) < 2 {
		for _, indexes := range buckets {
			scoreBucket(indexes)
		}
		return nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create scoring pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, indexes := range buckets {
		indexes := indexes
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			scoreBucket(indexes)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit bucket scoring task: %w", err)
		}
	}
	wg.Wait()

	return nil
}

// buildBuckets indexes every entry under a prefix of its normalized last
// name and a prefix of its normalized first name. The first-name key exists
// to catch pairs where one record has first/last transposed by an earlier
// parsing bug.
func buildBuckets(entries []entry) [][]int {
	byKey := make(map[string][]int)
	for i, e := range entries {
		lastKey := bucketKey(e.last)
		firstKey := bucketKey(e.first)
		if lastKey != "" {
			byKey[lastKey] = append(byKey[lastKey], i)
		}
		if firstKey != "" && firstKey != lastKey {
			byKey[firstKey] = append(byKey[firstKey], i)
		}
	}

	buckets := make([][]int, 0, len(byKey))
	for _, indexes := range byKey {
		if len(indexes) < 2 {
			continue
		}
		buckets = append(buckets, indexes)
	}

	return buckets
}

func bucketKey(part string) string {
	runes := []rune(part)
	if len(runes) > bucketPrefixLen {
		runes = runes[:bucketPrefixLen]
	}
	return string(runes)
}

// scorePair computes the composite similarity and a reason naming the
// strongest signal. Every check is symmetric in its arguments.
func scorePair(a, b entry) (float64, string) {
	if a.full == b.full {
		return 1.0, "exact name match after diacritic stripping"
	}
	if a.stripped == b.stripped {
		return 0.97, "name match after suffix stripping"
	}
	if a.first != "" && a.last != "" && a.first == b.last && a.last == b.first {
		return 0.95, "first/last name transposed"
	}

	score := similarity(a.full, b.full)
	reason := fmt.Sprintf("full name similarity %.2f", score)
	// Both orientations so the result is identical regardless of argument
	// order.
	transposed := similarity(a.full, b.reversed)
	if other := similarity(a.reversed, b.full); other > transposed {
		transposed = other
	}
	if transposed > score {
		score = transposed
		reason = fmt.Sprintf("transposed name similarity %.2f", transposed)
	}

	if a.last == b.last && a.last != "" && firstNameVariant(a.first, b.first) {
		if score < 0.90 {
			score = 0.90
		}
		reason = "last name exact, first name variant"
	} else if a.first == b.first && a.first != "" && a.last != b.last {
		if d := levenshtein(a.last, b.last); d >= 1 && d <= 2 {
			reason = fmt.Sprintf("last name edit-distance %d", d)
		}
	}

	return score, reason
}

// firstNameVariant reports whether two first names plausibly refer to the
// same person: near-identical, one a prefix of the other ("Alex"/"Alexander"),
// or one missing entirely (single-name records).
func firstNameVariant(a, b string) bool {
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return true
	}
	if levenshtein(a, b) <= 1 {
		return true
	}
	if len(a) >= 3 && len(b) >= 3 && (strings.HasPrefix(a, b) || strings.HasPrefix(b, a)) {
		return true
	}

	return false
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
