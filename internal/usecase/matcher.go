package usecase

import (
	"strings"

	"github.com/nutriscore/backend/internal/domain"
)

// BestMatch picks the candidate whose name overlaps the query best.
//
// Similarity is deliberately simple substring word overlap, not edit
// distance: split both strings into lowercase words, count a query word as
// matched when it is a substring of any candidate word or vice versa, and
// divide by the query word count. Ties keep the first candidate seen, so
// the result is stable for a fixed candidate order.
func BestMatch(query string, candidates []domain.SourceRecord) *domain.SourceRecord {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) == 1 {
		return &candidates[0]
	}

	best := 0
	bestScore := -1.0
	for i := range candidates {
		score := nameSimilarity(query, candidates[i].Name)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return &candidates[best]
}

// nameSimilarity returns matched-query-words / total-query-words in [0,1].
func nameSimilarity(query, candidate string) float64 {
	queryWords := strings.Fields(strings.ToLower(query))
	candidateWords := strings.Fields(strings.ToLower(candidate))
	if len(queryWords) == 0 {
		return 0
	}

	matched := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryWords))
}
