// Package listing implements the in-memory filter and sort pipeline backing
// the ambition and project list endpoints. All predicates are AND-composed;
// an empty predicate is a no-op.
package listing

import (
	"sort"
	"strings"

	"github.com/ascend-hq/ascend/internal/entity"
)

type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortDeadlineAsc  SortKey = "deadline_asc"
	SortDeadlineDesc SortKey = "deadline_desc"
)

// ParseSortKey maps a query parameter onto a known sort key, defaulting to
// newest-first for anything unrecognized.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortOldest, SortDeadlineAsc, SortDeadlineDesc:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// MatchesSearch reports whether term is a case-insensitive substring of any of
// the given fields. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// MatchesAnySkill reports whether any selected term is a case-insensitive
// substring of any record skill. An empty selection matches everything.
func MatchesAnySkill(selected []string, recordSkills []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, term := range selected {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		for _, skill := range recordSkills {
			if strings.Contains(strings.ToLower(skill), term) {
				return true
			}
		}
	}
	return false
}

func FilterAmbitions(ambitions []entity.Ambition, search string) []entity.Ambition {
	filtered := make([]entity.Ambition, 0, len(ambitions))
	for _, ambition := range ambitions {
		if MatchesSearch(search, ambition.Name, ambition.Description) {
			filtered = append(filtered, ambition)
		}
	}
	return filtered
}

func FilterProjects(projects []entity.Project, search, status string, skills []string) []entity.Project {
	filtered := make([]entity.Project, 0, len(projects))
	for _, project := range projects {
		if !MatchesSearch(search, project.Name, project.Description) {
			continue
		}
		if status != "" && !strings.EqualFold(project.Status, status) {
			continue
		}
		if !MatchesAnySkill(skills, skillNames(project.Skills)) {
			continue
		}
		filtered = append(filtered, project)
	}
	return filtered
}

// SortAmbitions orders ambitions by creation time. Deadline keys do not apply
// to ambitions and fall back to newest-first.
func SortAmbitions(ambitions []entity.Ambition, key SortKey) {
	sort.SliceStable(ambitions, func(i, j int) bool {
		if key == SortOldest {
			return ambitions[i].CreatedAt.Before(ambitions[j].CreatedAt)
		}
		return ambitions[i].CreatedAt.After(ambitions[j].CreatedAt)
	})
}

// SortProjects orders projects in place. Projects without a deadline sort
// after every project with one, regardless of direction: no deadline means
// least urgent. Equal keys keep their input order.
func SortProjects(projects []entity.Project, key SortKey) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		switch key {
		case SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortDeadlineAsc, SortDeadlineDesc:
			if a.Deadline == nil {
				return false
			}
			if b.Deadline == nil {
				return true
			}
			if key == SortDeadlineAsc {
				return a.Deadline.Before(*b.Deadline)
			}
			return a.Deadline.After(*b.Deadline)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func skillNames(skills []entity.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}
