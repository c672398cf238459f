package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/matching"
)

type matchRequest struct {
	JobText string `json:"jobText"`
	TopK    int    `json:"topK"`
}

// MatchResumes ranks the unassigned resume library against a job description
// with the local keyword scorer.
func MatchResumes(ctx *appcontext.Context) gin.HandlerFunc {
	return matchWith(ctx, func() matching.Matcher { return ctx.KeywordMatcher }, "Keyword matching is not configured")
}

// MatchResumesAI is the same pipeline backed by the Gemini matcher.
func MatchResumesAI(ctx *appcontext.Context) gin.HandlerFunc {
	return matchWith(ctx, func() matching.Matcher { return ctx.AIMatcher }, "AI matching is not configured")
}

func matchWith(ctx *appcontext.Context, pick func() matching.Matcher, unavailableMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request matchRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		if strings.TrimSpace(request.JobText) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job description is required"})
			return
		}

		matcher := pick()
		if matcher == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": unavailableMessage})
			return
		}

		var resumes []entity.Resume
		if err := ctx.DB.Where("user_id IS NULL").Find(&resumes).Error; err != nil {
			ctx.Logger.Error("Failed to get resume library", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get resume library"})
			return
		}

		matches, err := matcher.Match(c.Request.Context(), request.JobText, resumes, request.TopK)
		if err != nil {
			ctx.Logger.Error("Failed to match resumes", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"matches": matches})
	}
}
