package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/ascend-hq/ascend/internal/entity"
)

// KeywordMatcher scores each resume by the fraction of its profile terms
// (role and notes tokens) that appear in the job description.
type KeywordMatcher struct{}

func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{}
}

func (m *KeywordMatcher) Match(_ context.Context, jobText string, resumes []entity.Resume, topK int) ([]Match, error) {
	jobTokens := tokenSet(jobText)
	topK = NormalizeTopK(topK)

	matches := make([]Match, 0, len(resumes))
	for _, resume := range resumes {
		terms := profileTerms(&resume)

		var matched, missing []string
		for _, term := range terms {
			if jobTokens[term] {
				matched = append(matched, term)
			} else {
				missing = append(missing, term)
			}
		}

		var score float64
		if len(terms) > 0 {
			score = float64(len(matched)) / float64(len(terms))
		}

		matches = append(matches, Match{
			ID:            resume.ID.String(),
			CandidateName: resume.CandidateName,
			Score:         ClampScore(score),
			Why:           fmt.Sprintf("%d of %d profile terms appear in the job description", len(matched), len(terms)),
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}

	return matches, nil
}

// profileTerms returns the deduplicated lowercase tokens of a resume's role
// and notes, in first-seen order.
func profileTerms(resume *entity.Resume) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, token := range tokenize(resume.Role + " " + resume.Notes) {
		if !seen[token] {
			seen[token] = true
			terms = append(terms, token)
		}
	}
	return terms
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range tokenize(text) {
		set[token] = true
	}
	return set
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
