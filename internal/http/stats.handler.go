package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
)

// GetDashboardStatistics aggregates the headline numbers for the admin
// dashboard, with prior-month baselines for the delta badges.
func GetDashboardStatistics(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		var totalAmbitionCount int64
		ctx.DB.Model(&entity.Ambition{}).Count(&totalAmbitionCount)

		var totalProjectCount int64
		ctx.DB.Model(&entity.Project{}).Count(&totalProjectCount)

		var totalUserCount int64
		ctx.DB.Model(&entity.User{}).Count(&totalUserCount)

		var resumeLibraryCount int64
		ctx.DB.Model(&entity.Resume{}).Where("user_id IS NULL").Count(&resumeLibraryCount)

		var pendingInvitationCount int64
		ctx.DB.Model(&entity.ProjectInvitation{}).Where("status = ?", entity.InvitationStatusInvited).Count(&pendingInvitationCount)

		var pastMonthAmbitionCount int64
		ctx.DB.Model(&entity.Ambition{}).Where("created_at < ?", currentMonthStart).Count(&pastMonthAmbitionCount)

		var pastMonthProjectCount int64
		ctx.DB.Model(&entity.Project{}).Where("created_at < ?", currentMonthStart).Count(&pastMonthProjectCount)

		var projectStatusRaw []struct {
			Status string
			Count  int64
		}
		ctx.DB.Model(&entity.Project{}).
			Select("projects.status, COUNT(*) as count").
			Group("projects.status").
			Scan(&projectStatusRaw)

		projectStatusResponse := struct {
			NotStarted int64 `json:"notStarted"`
			InProgress int64 `json:"inProgress"`
			Complete   int64 `json:"complete"`
		}{}

		for _, item := range projectStatusRaw {
			switch item.Status {
			case entity.ProjectStatusNotStarted:
				projectStatusResponse.NotStarted = item.Count
			case entity.ProjectStatusInProgress:
				projectStatusResponse.InProgress = item.Count
			case entity.ProjectStatusComplete:
				projectStatusResponse.Complete = item.Count
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"totalAmbitionCount":     totalAmbitionCount,
			"totalProjectCount":      totalProjectCount,
			"totalUserCount":         totalUserCount,
			"resumeLibraryCount":     resumeLibraryCount,
			"pendingInvitationCount": pendingInvitationCount,
			"pastMonthAmbitionCount": pastMonthAmbitionCount,
			"pastMonthProjectCount":  pastMonthProjectCount,
			"projectStatusCounts":    projectStatusResponse,
		})
	}
}
