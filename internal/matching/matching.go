// Package matching ranks resume-library candidates against a free-text job
// description. Two backends exist: a local keyword scorer and a Gemini-backed
// scorer. Both return matches in ranked order with scores normalized to [0,1].
package matching

import (
	"context"

	"github.com/ascend-hq/ascend/internal/entity"
)

const (
	DefaultTopK = 10
	MaxTopK     = 50
)

type Match struct {
	ID            string   `json:"id"`
	CandidateName string   `json:"candidate_name"`
	Score         float64  `json:"score"`
	Why           string   `json:"why,omitempty"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
	MissingSkills []string `json:"missing_skills,omitempty"`
}

type Matcher interface {
	Match(ctx context.Context, jobText string, resumes []entity.Resume, topK int) ([]Match, error)
}

// NormalizeTopK applies the default and the upper bound to a requested top-K.
func NormalizeTopK(topK int) int {
	if topK <= 0 {
		return DefaultTopK
	}
	if topK > MaxTopK {
		return MaxTopK
	}
	return topK
}
