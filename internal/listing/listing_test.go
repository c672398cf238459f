package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ascend-hq/ascend/internal/entity"
)

func projectWith(name, description, status string, skills ...string) entity.Project {
	p := entity.Project{Name: name, Description: description, Status: status}
	for _, s := range skills {
		p.Skills = append(p.Skills, entity.Skill{Name: s})
	}
	return p
}

func createdAt(t time.Time) gorm.Model {
	return gorm.Model{CreatedAt: t}
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("", "anything", "at all"))
	assert.True(t, MatchesSearch("  ", "anything"))
	assert.True(t, MatchesSearch("transform", "Digital Transformation Initiative", ""))
	assert.True(t, MatchesSearch("TRANSFORM", "digital transformation", ""))
	assert.True(t, MatchesSearch("capabilities", "Initiative", "Transform our digital capabilities"))
	assert.False(t, MatchesSearch("blockchain", "Digital Transformation", "cloud migration"))
}

func TestFilterAmbitionsEmptySearchReturnsAll(t *testing.T) {
	ambitions := []entity.Ambition{
		{Name: "First"},
		{Name: "Second"},
		{Name: "Third"},
	}

	filtered := FilterAmbitions(ambitions, "")
	assert.Len(t, filtered, 3)
}

func TestFilterProjectsComposesPredicates(t *testing.T) {
	projects := []entity.Project{
		projectWith("Mobile App", "new customer app", entity.ProjectStatusInProgress, "React", "Design"),
		projectWith("Data Platform", "warehouse rebuild", entity.ProjectStatusInProgress, "SQL", "Go"),
		projectWith("Mobile Site", "responsive web", entity.ProjectStatusComplete, "React"),
	}

	filtered := FilterProjects(projects, "mobile", entity.ProjectStatusInProgress, nil)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Mobile App", filtered[0].Name)
}

func TestFilterProjectsSkillsAnyMatch(t *testing.T) {
	projects := []entity.Project{
		projectWith("A", "", "", "React", "Design"),
		projectWith("B", "", "", "Go", "Kubernetes"),
		projectWith("C", "", "", "TypeScript"),
	}

	// A record passes when any selected term matches any of its skills.
	filtered := FilterProjects(projects, "", "", []string{"go", "design"})
	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].Name)
	assert.Equal(t, "B", filtered[1].Name)

	// Substring match is enough: "script" hits "TypeScript".
	filtered = FilterProjects(projects, "", "", []string{"script"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "C", filtered[0].Name)
}

func TestSortProjectsByCreation(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []entity.Project{
		{Model: createdAt(base.AddDate(0, 0, 1)), Name: "old"},
		{Model: createdAt(base.AddDate(0, 0, 3)), Name: "newest"},
		{Model: createdAt(base.AddDate(0, 0, 2)), Name: "middle"},
	}

	SortProjects(projects, SortNewest)
	assert.Equal(t, "newest", projects[0].Name)
	assert.Equal(t, "old", projects[2].Name)

	SortProjects(projects, SortOldest)
	assert.Equal(t, "old", projects[0].Name)
	assert.Equal(t, "newest", projects[2].Name)
}

func TestSortProjectsMissingDeadlineAlwaysLast(t *testing.T) {
	early := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	build := func() []entity.Project {
		return []entity.Project{
			{Name: "none-a"},
			{Name: "late", Deadline: &late},
			{Name: "none-b"},
			{Name: "early", Deadline: &early},
		}
	}

	projects := build()
	SortProjects(projects, SortDeadlineAsc)
	assert.Equal(t, "early", projects[0].Name)
	assert.Equal(t, "late", projects[1].Name)
	assert.Equal(t, "none-a", projects[2].Name)
	assert.Equal(t, "none-b", projects[3].Name)

	projects = build()
	SortProjects(projects, SortDeadlineDesc)
	assert.Equal(t, "late", projects[0].Name)
	assert.Equal(t, "early", projects[1].Name)
	assert.Equal(t, "none-a", projects[2].Name)
	assert.Equal(t, "none-b", projects[3].Name)
}

func TestSortProjectsStableForEqualKeys(t *testing.T) {
	deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	projects := []entity.Project{
		{Name: "first", Deadline: &deadline},
		{Name: "second", Deadline: &deadline},
		{Name: "third", Deadline: &deadline},
	}

	SortProjects(projects, SortDeadlineAsc)
	assert.Equal(t, "first", projects[0].Name)
	assert.Equal(t, "second", projects[1].Name)
	assert.Equal(t, "third", projects[2].Name)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("bogus"))
	assert.Equal(t, SortOldest, ParseSortKey("oldest"))
	assert.Equal(t, SortDeadlineAsc, ParseSortKey("deadline_asc"))
	assert.Equal(t, SortDeadlineDesc, ParseSortKey("deadline_desc"))
}
