package utils

import (
	"strings"

	"github.com/ascend-hq/ascend/internal/entity"
)

func AmbitionToDocument(ambition *entity.Ambition) map[string]interface{} {
	return map[string]interface{}{
		"id":          ambition.ID.String(),
		"type":        "ambition",
		"name":        ambition.Name,
		"description": ambition.Description,
	}
}

func ProjectToDocument(project *entity.Project) map[string]interface{} {
	skills := make([]string, 0, len(project.Skills))
	for _, skill := range project.Skills {
		skills = append(skills, skill.Name)
	}

	return map[string]interface{}{
		"id":          project.ID.String(),
		"type":        "project",
		"name":        project.Name,
		"description": project.Description,
		"status":      project.Status,
		"parent_id":   project.AmbitionID.String(),
		"skills":      strings.Join(skills, " "),
	}
}

func ResumeToDocument(resume *entity.Resume) map[string]interface{} {
	return map[string]interface{}{
		"id":          resume.ID.String(),
		"type":        "resume",
		"name":        resume.CandidateName,
		"description": resume.Notes,
		"role":        resume.Role,
	}
}
