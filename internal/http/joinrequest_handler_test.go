package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-hq/ascend/internal/entity"
)

func TestCreateJoinRequest(t *testing.T) {
	ctx, engine := newTestServer(t)
	applicant := createUser(t, ctx, entity.RoleContributor)
	token := tokenFor(t, applicant)

	ambition := entity.Ambition{Name: "Parent"}
	require.NoError(t, ctx.DB.Create(&ambition).Error)
	project := entity.Project{Name: "Open Project", AmbitionID: ambition.ID}
	require.NoError(t, ctx.DB.Create(&project).Error)

	rec := doJSON(t, engine, http.MethodPost, "/api/join-requests", token, map[string]interface{}{
		"project_id":        project.ID.String(),
		"role_id":           nil,
		"applicant_comment": "I have 5 years of experience",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored entity.JoinRequest
	require.NoError(t, ctx.DB.First(&stored).Error)
	assert.Equal(t, project.ID, stored.ProjectID)
	assert.Equal(t, applicant.ID, stored.UserID)
	assert.Nil(t, stored.RoleID)
	assert.Equal(t, "I have 5 years of experience", stored.ApplicantComment)
	assert.Equal(t, "pending", stored.Status)
}

func TestCreateJoinRequestUnknownProject(t *testing.T) {
	ctx, engine := newTestServer(t)
	token := tokenFor(t, createUser(t, ctx, entity.RoleContributor))

	rec := doJSON(t, engine, http.MethodPost, "/api/join-requests", token, map[string]interface{}{
		"project_id":        "00000000-0000-0000-0000-000000000001",
		"applicant_comment": "hello",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	ctx.DB.Model(&entity.JoinRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateJoinRequestRequiresProjectID(t *testing.T) {
	ctx, engine := newTestServer(t)
	token := tokenFor(t, createUser(t, ctx, entity.RoleContributor))

	rec := doJSON(t, engine, http.MethodPost, "/api/join-requests", token, map[string]interface{}{
		"applicant_comment": "missing project",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
