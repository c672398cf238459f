package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-hq/ascend/internal/entity"
)

func resume(name, role, notes string) entity.Resume {
	return entity.Resume{
		ID:            uuid.New(),
		CandidateName: name,
		Role:          role,
		Notes:         notes,
	}
}

func TestKeywordMatcherRanksByTermOverlap(t *testing.T) {
	resumes := []entity.Resume{
		resume("Alice", "backend engineer", "go postgres kubernetes"),
		resume("Bob", "designer", "figma illustration"),
		resume("Carol", "backend engineer", "go grpc"),
	}

	matcher := NewKeywordMatcher()
	matches, err := matcher.Match(context.Background(), "We need a backend engineer with Go and gRPC experience", resumes, 0)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "Carol", matches[0].CandidateName)
	assert.Equal(t, "Alice", matches[1].CandidateName)
	assert.Equal(t, "Bob", matches[2].CandidateName)

	// Carol's whole profile appears in the job text.
	assert.Equal(t, 1.0, matches[0].Score)
	assert.Equal(t, 0.0, matches[2].Score)

	for _, match := range matches {
		assert.GreaterOrEqual(t, match.Score, 0.0)
		assert.LessOrEqual(t, match.Score, 1.0)
		assert.NotEmpty(t, match.Why)
	}
}

func TestKeywordMatcherMatchedAndMissingSkills(t *testing.T) {
	resumes := []entity.Resume{
		resume("Alice", "engineer", "go react"),
	}

	matcher := NewKeywordMatcher()
	matches, err := matcher.Match(context.Background(), "hiring a go engineer", resumes, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.ElementsMatch(t, []string{"engineer", "go"}, matches[0].MatchedSkills)
	assert.ElementsMatch(t, []string{"react"}, matches[0].MissingSkills)
}

func TestKeywordMatcherTopK(t *testing.T) {
	var resumes []entity.Resume
	for i := 0; i < 15; i++ {
		resumes = append(resumes, resume("Candidate", "engineer", "go"))
	}

	matcher := NewKeywordMatcher()
	matches, err := matcher.Match(context.Background(), "go engineer", resumes, 0)
	require.NoError(t, err)
	assert.Len(t, matches, DefaultTopK)

	matches, err = matcher.Match(context.Background(), "go engineer", resumes, 3)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestKeywordMatcherEmptyProfileScoresZero(t *testing.T) {
	resumes := []entity.Resume{resume("Empty", "", "")}

	matcher := NewKeywordMatcher()
	matches, err := matcher.Match(context.Background(), "anything at all", resumes, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 0.0, matches[0].Score)
}
