// Package match filters and ranks candidate display strings against a query.
package match

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	skim "github.com/sahilm/fuzzy"
)

// Result pairs a candidate display string with its position in the original
// candidate list and the score the active scorer assigned to it.
type Result struct {
	Index int
	Text  string
	Score int
}

// Scorer computes a relevance score for a needle within a haystack. Higher is
// better. The second return value is false when the needle does not match at
// all. Callers pass both arguments already lower-cased.
type Scorer interface {
	Score(haystack, needle string) (int, bool)
}

// SkimScorer scores with sahilm/fuzzy, which rewards consecutive and
// early matches with integer bonuses. This is the default scorer.
type SkimScorer struct{}

// Score implements Scorer.
func (SkimScorer) Score(haystack, needle string) (int, bool) {
	matches := skim.Find(needle, []string{haystack})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// rankCeiling is the score of a perfect RankScorer match. Real edit distances
// are tiny against it, so inverted scores stay positive.
const rankCeiling = 1 << 16

// RankScorer scores with lithammer/fuzzysearch. RankMatch reports an edit
// distance where lower is better, so the distance is subtracted from a fixed
// ceiling to produce a score that sorts the same way as SkimScorer output.
type RankScorer struct{}

// Score implements Scorer.
func (RankScorer) Score(haystack, needle string) (int, bool) {
	rank := fuzzy.RankMatchNormalizedFold(needle, haystack)
	if rank < 0 {
		return 0, false
	}
	return rankCeiling - rank, true
}

// Rank produces the filtered, ordered display list for one render tick.
//
// An empty prompt includes every candidate in original order. Otherwise a
// candidate is included iff its score is non-zero, and included candidates are
// ordered by descending score. The sort is stable, so candidates with equal
// scores keep their relative input order; nothing beyond that is guaranteed
// for ties.
func Rank(items []string, prompt string, scorer Scorer) []Result {
	results := make([]Result, 0, len(items))
	if prompt == "" {
		for i, text := range items {
			results = append(results, Result{Index: i, Text: text})
		}
		return results
	}
	needle := strings.ToLower(prompt)
	for i, text := range items {
		score, ok := scorer.Score(strings.ToLower(text), needle)
		if !ok || score == 0 {
			continue
		}
		results = append(results, Result{Index: i, Text: text, Score: score})
	}
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results
}
