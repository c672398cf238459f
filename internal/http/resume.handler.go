package http

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/utils"
)

func GetResumes(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := ctx.DB
		switch c.Query("assigned") {
		case "true":
			query = query.Where("user_id IS NOT NULL")
		case "false":
			query = query.Where("user_id IS NULL")
		}

		var resumes []entity.Resume
		if err := query.Find(&resumes).Error; err != nil {
			ctx.Logger.Error("Failed to get resumes", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get resumes"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"resumes": resumes})
	}
}

func ImportResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		candidateName := strings.TrimSpace(c.PostForm("candidate_name"))
		if candidateName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate name is required"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			ctx.Logger.Error("Failed to get file from request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get file from request"})
			return
		}

		if !isResumeFile(file) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type, only PDF and Word documents are allowed"})
			return
		}

		src, err := file.Open()
		if err != nil {
			ctx.Logger.Error("Failed to open file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		objectPath := "resumes/" + uuid.NewString() + "/" + filepath.Base(file.Filename)

		w := ctx.GCSClient.Bucket(ctx.GCSBucketName).Object(objectPath).NewWriter(context.Background())

		if _, err := io.Copy(w, src); err != nil {
			ctx.Logger.Error("Failed to upload file to GCS", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file to GCS"})
			return
		}

		if err := w.Close(); err != nil {
			ctx.Logger.Error("Failed to close GCS writer", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close GCS writer"})
			return
		}

		resume := entity.Resume{
			CandidateName: candidateName,
			Role:          strings.TrimSpace(c.PostForm("role")),
			Notes:         strings.TrimSpace(c.PostForm("notes")),
			FilePath:      objectPath,
		}

		if err := ctx.DB.Create(&resume).Error; err != nil {
			ctx.Logger.Error("Failed to store resume in database", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume in database"})
			return
		}

		indexDocument(ctx, utils.ResumeToDocument(&resume))

		c.JSON(http.StatusCreated, gin.H{"resume": resume})
	}
}

func isResumeFile(file *multipart.FileHeader) bool {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

func AssignResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type assignResumeRequest struct {
			UserID string `json:"user_id" binding:"required"`
		}

		var request assignResumeRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to bind request"})
			return
		}

		resumeID, err := uuid.Parse(c.Param("resumeID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID"})
			return
		}

		userID, err := uuid.Parse(request.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var resume entity.Resume
		if err := ctx.DB.First(&resume, "id = ?", resumeID).Error; err != nil {
			ctx.Logger.Error("Failed to find resume", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}

		if err := ctx.DB.Model(&resume).Update("user_id", userID).Error; err != nil {
			ctx.Logger.Error("Failed to assign resume", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign resume"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"resume": resume})
	}
}

func UnassignResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		resumeID, err := uuid.Parse(c.Param("resumeID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID"})
			return
		}

		var resume entity.Resume
		if err := ctx.DB.First(&resume, "id = ?", resumeID).Error; err != nil {
			ctx.Logger.Error("Failed to find resume", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}

		if err := ctx.DB.Model(&resume).Update("user_id", nil).Error; err != nil {
			ctx.Logger.Error("Failed to unassign resume", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign resume"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"resume": resume})
	}
}

func DeleteResume(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		resumeID, err := uuid.Parse(c.Param("resumeID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID"})
			return
		}

		var resume entity.Resume
		if err := ctx.DB.First(&resume, "id = ?", resumeID).Error; err != nil {
			ctx.Logger.Error("Failed to find resume", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}

		if err := ctx.DB.Delete(&resume).Error; err != nil {
			ctx.Logger.Error("Failed to delete resume", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if resume.FilePath != "" && ctx.GCSClient != nil {
			if err := ctx.GCSClient.Bucket(ctx.GCSBucketName).Object(resume.FilePath).Delete(context.Background()); err != nil {
				ctx.Logger.Warn("Failed to delete resume file from GCS", zap.Error(err))
			}
		}

		removeDocument(ctx, resume.ID.String())

		c.JSON(http.StatusOK, gin.H{"message": "Resume deleted"})
	}
}

// GetResumeURL mints a short-lived signed URL for viewing the stored file.
func GetResumeURL(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		resumeID, err := uuid.Parse(c.Param("resumeID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID"})
			return
		}

		var resume entity.Resume
		if err := ctx.DB.First(&resume, "id = ?", resumeID).Error; err != nil {
			ctx.Logger.Error("Failed to find resume", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}

		if resume.FilePath == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume has no stored file"})
			return
		}

		url, err := ctx.GCSClient.Bucket(ctx.GCSBucketName).SignedURL(resume.FilePath, &storage.SignedURLOptions{
			Method:  http.MethodGet,
			Expires: time.Now().Add(15 * time.Minute),
		})
		if err != nil {
			ctx.Logger.Error("Failed to sign resume URL", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign resume URL"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url, "expires_in_seconds": 900})
	}
}
