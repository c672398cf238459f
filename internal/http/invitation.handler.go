package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/utils"
)

func GetMyInvitations(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var invitations []entity.ProjectInvitation
		if err := ctx.DB.Where("user_id = ?", userID).Find(&invitations).Error; err != nil {
			ctx.Logger.Error("Failed to get invitations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invitations"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"invitations": invitations})
	}
}

func CreateInvitation(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createInvitationRequest struct {
			UserID    string `json:"user_id" binding:"required"`
			ProjectID string `json:"project_id" binding:"required"`
		}

		var request createInvitationRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		userID, err := uuid.Parse(request.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		projectID, err := uuid.Parse(request.ProjectID)
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

		var existing entity.ProjectInvitation
		if err := ctx.DB.Where("user_id = ? AND project_id = ? AND status = ?", userID, projectID, entity.InvitationStatusInvited).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "User already has a pending invitation for this project"})
			return
		}

		invitation := entity.ProjectInvitation{
			UserID:    userID,
			ProjectID: projectID,
			Status:    entity.InvitationStatusInvited,
		}

		if err := ctx.DB.Create(&invitation).Error; err != nil {
			ctx.Logger.Error("Failed to create invitation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"invitation": invitation})
	}
}

// RespondToInvitation lets the invited user accept or decline. Only rows still
// in the invited state may transition, and only by their owner.
func RespondToInvitation(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type respondRequest struct {
			Status string `json:"status" binding:"required"`
		}

		var request respondRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		if request.Status != entity.InvitationStatusAccepted && request.Status != entity.InvitationStatusDeclined {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be accepted or declined"})
			return
		}

		invitationID, err := uuid.Parse(c.Param("invitationID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
			return
		}

		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var invitation entity.ProjectInvitation
		if err := ctx.DB.First(&invitation, "id = ?", invitationID).Error; err != nil {
			ctx.Logger.Error("Failed to find invitation", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
			return
		}

		if invitation.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invitation belongs to another user"})
			return
		}

		if invitation.Status != entity.InvitationStatusInvited {
			c.JSON(http.StatusConflict, gin.H{"error": "Invitation was already responded to"})
			return
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":       request.Status,
			"responded_at": &now,
		}
		if err := ctx.DB.Model(&invitation).Updates(updates).Error; err != nil {
			ctx.Logger.Error("Failed to update invitation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invitation"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"invitation": invitation})
	}
}
