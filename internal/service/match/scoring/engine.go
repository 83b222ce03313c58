// Package scoring computes pairwise compatibility between a subject user and
// a pool of candidates. It is pure and deterministic: no I/O, no clock.
package scoring

import (
	"cmp"
	"math"
	"slices"

	"github.com/saned/saned-backend/internal/domain"
)

// MaxResults caps the number of results ComputeMatches returns.
const MaxResults = 5

// Component weights of the composite score. They sum to 1.
const (
	TagWeight      = 0.5
	RoleWeight     = 0.3
	LocationWeight = 0.2
)

// Sub-score constants.
const (
	// TagFloor is the tag similarity used when there is nothing to compare.
	TagFloor = 0.1

	SameRoleScore      = 1.0
	DifferentRoleScore = 0.5

	SameLocationScore      = 1.0
	DifferentLocationScore = 0.3
)

// Breakdown holds the sub-scores behind a composite score.
type Breakdown struct {
	TagSimilarity float64
	RoleScore     float64
	LocationScore float64
	SharedTags    []string
}

// Composite returns the weighted score on a 0..100 scale, rounded half-up.
func (b Breakdown) Composite() int {
	raw := (b.TagSimilarity*TagWeight + b.RoleScore*RoleWeight + b.LocationScore*LocationWeight) * 100
	return int(math.Floor(raw + 0.5))
}

// Compare scores a single candidate against the subject.
func Compare(subject, candidate *domain.User) Breakdown {
	subjectTags := subject.CompareTags()
	candidateTags := candidate.CompareTags()

	shared := SharedTags(subjectTags, candidateTags)

	b := Breakdown{
		TagSimilarity: tagSimilarity(len(shared), len(subjectTags), len(candidateTags)),
		RoleScore:     DifferentRoleScore,
		LocationScore: DifferentLocationScore,
		SharedTags:    shared,
	}
	if candidate.Role == subject.Role {
		b.RoleScore = SameRoleScore
	}
	if candidate.Location == subject.Location {
		b.LocationScore = SameLocationScore
	}
	return b
}

// SharedTags returns the candidate tags that also appear in the subject's
// tags, in candidate order. Comparison is exact and case-sensitive.
func SharedTags(subjectTags, candidateTags []string) []string {
	set := make(map[string]struct{}, len(subjectTags))
	for _, t := range subjectTags {
		set[t] = struct{}{}
	}

	shared := make([]string, 0, len(candidateTags))
	for _, t := range candidateTags {
		if _, ok := set[t]; ok {
			shared = append(shared, t)
		}
	}
	return shared
}

func tagSimilarity(shared, subjectLen, candidateLen int) float64 {
	denom := max(subjectLen, candidateLen)
	if subjectLen == 0 || denom == 0 {
		return TagFloor
	}
	return float64(shared) / float64(denom)
}

// ComputeMatches scores every candidate except the subject, sorts the results
// by descending score (stable, so ties keep input order) and returns at most
// MaxResults of them.
func ComputeMatches(subject *domain.User, candidates []domain.User) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(candidates))

	for i := range candidates {
		candidate := &candidates[i]
		if candidate.ID == subject.ID {
			continue
		}

		b := Compare(subject, candidate)
		results = append(results, domain.MatchResult{
			Candidate:  candidate,
			Score:      b.Composite(),
			SharedTags: b.SharedTags,
			Highlight:  Highlight(subject, candidate, b.SharedTags),
		})
	}

	slices.SortStableFunc(results, func(a, b domain.MatchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
