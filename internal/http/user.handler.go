package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
)

func GetUsers(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := ctx.DB
		if role := c.Query("role"); role != "" {
			query = query.Where("role = ?", role)
		}

		var users []entity.User
		if err := query.Find(&users).Error; err != nil {
			ctx.Logger.Error("Failed to get users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

func GetUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("userID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user entity.User
		if err := ctx.DB.First(&user, "id = ?", userID).Error; err != nil {
			ctx.Logger.Error("Failed to find user", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
