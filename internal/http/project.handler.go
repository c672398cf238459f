package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/listing"
	"github.com/ascend-hq/ascend/internal/utils"
)

const defaultHoursPerWeek = 40

func GetProjects(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var projects []entity.Project
		if err := ctx.DB.Preload("Skills").Find(&projects).Error; err != nil {
			ctx.Logger.Error("Failed to get projects", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get projects"})
			return
		}

		var skills []string
		if raw := c.Query("skills"); raw != "" {
			skills = strings.Split(raw, ",")
		}

		filtered := listing.FilterProjects(projects, c.Query("q"), c.Query("status"), skills)
		listing.SortProjects(filtered, listing.ParseSortKey(c.Query("sort")))

		c.JSON(http.StatusOK, gin.H{"projects": filtered})
	}
}

func CreateProject(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createProjectRequest struct {
			Name         string      `json:"name" binding:"required"`
			Description  string      `json:"description"`
			AmbitionID   string      `json:"ambition_id" binding:"required"`
			ManagerID    string      `json:"manager_id"`
			Deadline     *time.Time  `json:"deadline"`
			HoursPerWeek interface{} `json:"hours_per_week"`
			Skills       []string    `json:"skills"`
		}

		var request createProjectRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		ambitionID, err := uuid.Parse(request.AmbitionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ambition ID"})
			return
		}

		project := entity.Project{
			Name:         request.Name,
			Description:  request.Description,
			AmbitionID:   ambitionID,
			Deadline:     request.Deadline,
			HoursPerWeek: parseHoursPerWeek(request.HoursPerWeek),
			Status:       entity.ProjectStatusNotStarted,
		}

		if request.ManagerID != "" {
			managerID, err := uuid.Parse(request.ManagerID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager ID"})
				return
			}
			project.ManagerID = &managerID
		}

		for _, name := range request.Skills {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			var skill entity.Skill
			if err := ctx.DB.Where("name = ?", name).FirstOrCreate(&skill, entity.Skill{Name: name}).Error; err != nil {
				ctx.Logger.Error("Failed to upsert skill", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert skill"})
				return
			}
			project.Skills = append(project.Skills, skill)
		}

		if err := ctx.DB.Create(&project).Error; err != nil {
			ctx.Logger.Error("Failed to create project", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
			return
		}

		indexDocument(ctx, utils.ProjectToDocument(&project))

		c.JSON(http.StatusCreated, gin.H{"project": project})
	}
}

// parseHoursPerWeek tolerates numbers, numeric strings, and garbage alike;
// anything unusable falls back to the default.
func parseHoursPerWeek(raw interface{}) int {
	switch v := raw.(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultHoursPerWeek
}

func DeleteProject(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("projectID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}

		var project entity.Project
		if err := ctx.DB.First(&project, "id = ?", projectID).Error; err != nil {
			ctx.Logger.Error("Failed to find project", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		if err := ctx.DB.Delete(&project).Error; err != nil {
			ctx.Logger.Error("Failed to delete project", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		removeDocument(ctx, project.ID.String())

		c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
	}
}

func GetProjectTeam(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("projectID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}

		var invitations []entity.ProjectInvitation
		if err := ctx.DB.Where("project_id = ? AND status = ?", projectID, entity.InvitationStatusAccepted).Find(&invitations).Error; err != nil {
			ctx.Logger.Error("Failed to get project team", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project team"})
			return
		}

		userIDs := make([]uuid.UUID, 0, len(invitations))
		for _, invitation := range invitations {
			userIDs = append(userIDs, invitation.UserID)
		}

		var members []entity.User
		if len(userIDs) > 0 {
			if err := ctx.DB.Where("id IN ?", userIDs).Find(&members).Error; err != nil {
				ctx.Logger.Error("Failed to get team members", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get team members"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"members": members})
	}
}

// AssignTeamMember adds a user to a project directly, recorded as an already
// accepted invitation so team listings have a single source of truth.
func AssignTeamMember(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type assignTeamMemberRequest struct {
			UserID string `json:"user_id" binding:"required"`
		}

		var request assignTeamMemberRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		projectID, err := uuid.Parse(c.Param("projectID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}

		userID, err := uuid.Parse(request.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var existing entity.ProjectInvitation
		if err := ctx.DB.Where("project_id = ? AND user_id = ? AND status = ?", projectID, userID, entity.InvitationStatusAccepted).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "User is already on this project"})
			return
		}

		now := time.Now()
		invitation := entity.ProjectInvitation{
			UserID:      userID,
			ProjectID:   projectID,
			Status:      entity.InvitationStatusAccepted,
			RespondedAt: &now,
		}

		if err := ctx.DB.Create(&invitation).Error; err != nil {
			ctx.Logger.Error("Failed to assign team member", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign team member"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"invitation": invitation})
	}
}
