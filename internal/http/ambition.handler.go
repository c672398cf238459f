package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/listing"
	"github.com/ascend-hq/ascend/internal/utils"
)

func GetAmbitions(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ambitions []entity.Ambition
		if err := ctx.DB.Preload("Projects").Find(&ambitions).Error; err != nil {
			ctx.Logger.Error("Failed to get ambitions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get ambitions"})
			return
		}

		filtered := listing.FilterAmbitions(ambitions, c.Query("q"))
		listing.SortAmbitions(filtered, listing.ParseSortKey(c.Query("sort")))

		c.JSON(http.StatusOK, gin.H{"ambitions": filtered})
	}
}

func CreateAmbition(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createAmbitionRequest struct {
			Name        string `json:"name" binding:"required"`
			Description string `json:"description"`
			LeaderID    string `json:"leader_id"`
		}

		var request createAmbitionRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ambition := entity.Ambition{
			Name:        request.Name,
			Description: request.Description,
			CreatedByID: userID,
		}

		if request.LeaderID != "" {
			leaderID, err := uuid.Parse(request.LeaderID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid leader ID"})
				return
			}
			ambition.LeaderID = &leaderID
		}

		if err := ctx.DB.Create(&ambition).Error; err != nil {
			ctx.Logger.Error("Failed to create ambition", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ambition"})
			return
		}

		indexDocument(ctx, utils.AmbitionToDocument(&ambition))

		c.JSON(http.StatusCreated, gin.H{"ambition": ambition})
	}
}

func DeleteAmbition(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		ambitionID, err := uuid.Parse(c.Param("ambitionID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ambition ID"})
			return
		}

		var ambition entity.Ambition
		if err := ctx.DB.First(&ambition, "id = ?", ambitionID).Error; err != nil {
			ctx.Logger.Error("Failed to find ambition", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Ambition not found"})
			return
		}

		// The store's message is surfaced verbatim so the client can show it.
		if err := ctx.DB.Delete(&ambition).Error; err != nil {
			ctx.Logger.Error("Failed to delete ambition", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		removeDocument(ctx, ambition.ID.String())

		c.JSON(http.StatusOK, gin.H{"message": "Ambition deleted"})
	}
}
