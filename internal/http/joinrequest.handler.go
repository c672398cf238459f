package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/utils"
)

// CreateJoinRequest records an application to a project. role_id is optional:
// applicants may apply without picking a specific role on the project.
func CreateJoinRequest(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createJoinRequestRequest struct {
			ProjectID        string  `json:"project_id" binding:"required"`
			RoleID           *string `json:"role_id"`
			ApplicantComment string  `json:"applicant_comment"`
		}

		var request createJoinRequestRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		projectID, err := uuid.Parse(request.ProjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}

		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var project entity.Project
		if err := ctx.DB.First(&project, "id = ?", projectID).Error; err != nil {
			ctx.Logger.Error("Failed to find project", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		joinRequest := entity.JoinRequest{
			ProjectID:        projectID,
			UserID:           userID,
			ApplicantComment: request.ApplicantComment,
			Status:           "pending",
		}

		if request.RoleID != nil && *request.RoleID != "" {
			roleID, err := uuid.Parse(*request.RoleID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
				return
			}
			joinRequest.RoleID = &roleID
		}

		if err := ctx.DB.Create(&joinRequest).Error; err != nil {
			ctx.Logger.Error("Failed to create join request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"join_request": joinRequest})
	}
}
