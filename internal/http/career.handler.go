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

func GetCareerPaths(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var paths []entity.CareerPath
		if err := ctx.DB.Find(&paths).Error; err != nil {
			ctx.Logger.Error("Failed to get career paths", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get career paths"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"paths": paths})
	}
}

func GetCareerPreferences(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var preferences []entity.CareerPathPreference
		if err := ctx.DB.Where("user_id = ?", userID).Order("rank").Find(&preferences).Error; err != nil {
			ctx.Logger.Error("Failed to get career preferences", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get career preferences"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"preferences": preferences})
	}
}

func CreateCareerPreference(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type createPreferenceRequest struct {
			PathID string `json:"path_id" binding:"required"`
			Rank   int    `json:"rank" binding:"required"`
		}

		var request createPreferenceRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		if request.Rank < 1 || request.Rank > entity.MaxCareerPathPreferences {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rank must be between 1 and 3"})
			return
		}

		pathID, err := uuid.Parse(request.PathID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path ID"})
			return
		}

		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var path entity.CareerPath
		if err := ctx.DB.First(&path, "id = ?", pathID).Error; err != nil {
			ctx.Logger.Error("Failed to find career path", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Career path not found"})
			return
		}

		// The cap is checked before any insert is attempted.
		var count int64
		if err := ctx.DB.Model(&entity.CareerPathPreference{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			ctx.Logger.Error("Failed to count career preferences", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count career preferences"})
			return
		}
		if count >= entity.MaxCareerPathPreferences {
			c.JSON(http.StatusConflict, gin.H{"error": "Maximum of 3 career path preferences reached"})
			return
		}

		var existing entity.CareerPathPreference
		if err := ctx.DB.Where("user_id = ? AND path_id = ?", userID, pathID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Career path already selected"})
			return
		}

		preference := entity.CareerPathPreference{
			UserID: userID,
			PathID: pathID,
			Rank:   request.Rank,
		}

		if err := ctx.DB.Create(&preference).Error; err != nil {
			ctx.Logger.Error("Failed to create career preference", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create career preference"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"preference": preference})
	}
}

func DeleteCareerPreference(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		pathID, err := uuid.Parse(c.Param("pathID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path ID"})
			return
		}

		userID, err := utils.GetUserIDFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get user ID from claims", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Hard delete: the (user_id, path_id) unique index must free up so
		// the user can re-select the same path later.
		result := ctx.DB.Unscoped().Where("user_id = ? AND path_id = ?", userID, pathID).Delete(&entity.CareerPathPreference{})
		if result.Error != nil {
			ctx.Logger.Error("Failed to delete career preference", zap.Error(result.Error))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete career preference"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Career preference not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Career preference removed"})
	}
}
