package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-hq/ascend/internal/entity"
)

func TestRespondToInvitation(t *testing.T) {
	ctx, engine := newTestServer(t)
	manager := createUser(t, ctx, entity.RoleManager)
	invitee := createUser(t, ctx, entity.RoleContributor)

	ambition := entity.Ambition{Name: "Parent"}
	require.NoError(t, ctx.DB.Create(&ambition).Error)
	project := entity.Project{Name: "Inviting", AmbitionID: ambition.ID}
	require.NoError(t, ctx.DB.Create(&project).Error)

	rec := doJSON(t, engine, http.MethodPost, "/api/invitations", tokenFor(t, manager), map[string]interface{}{
		"user_id":    invitee.ID.String(),
		"project_id": project.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var invitation entity.ProjectInvitation
	require.NoError(t, ctx.DB.First(&invitation).Error)
	assert.Equal(t, entity.InvitationStatusInvited, invitation.Status)
	assert.Nil(t, invitation.RespondedAt)

	rec = doJSON(t, engine, http.MethodPut, "/api/invitations/"+invitation.ID.String()+"/respond", tokenFor(t, invitee), map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, ctx.DB.First(&invitation, "id = ?", invitation.ID).Error)
	assert.Equal(t, entity.InvitationStatusAccepted, invitation.Status)
	assert.NotNil(t, invitation.RespondedAt)
}

func TestRespondToInvitationOnlyOnce(t *testing.T) {
	ctx, engine := newTestServer(t)
	invitee := createUser(t, ctx, entity.RoleContributor)

	invitation := entity.ProjectInvitation{
		UserID:    invitee.ID,
		ProjectID: entityProjectID(t, ctx),
		Status:    entity.InvitationStatusInvited,
	}
	require.NoError(t, ctx.DB.Create(&invitation).Error)

	token := tokenFor(t, invitee)
	rec := doJSON(t, engine, http.MethodPut, "/api/invitations/"+invitation.ID.String()+"/respond", token, map[string]interface{}{
		"status": "declined",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/invitations/"+invitation.ID.String()+"/respond", token, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRespondToInvitationOwnerOnly(t *testing.T) {
	ctx, engine := newTestServer(t)
	invitee := createUser(t, ctx, entity.RoleContributor)
	stranger := createUser(t, ctx, entity.RoleUser)

	invitation := entity.ProjectInvitation{
		UserID:    invitee.ID,
		ProjectID: entityProjectID(t, ctx),
		Status:    entity.InvitationStatusInvited,
	}
	require.NoError(t, ctx.DB.Create(&invitation).Error)

	rec := doJSON(t, engine, http.MethodPut, "/api/invitations/"+invitation.ID.String()+"/respond", tokenFor(t, stranger), map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRespondToInvitationRejectsUnknownStatus(t *testing.T) {
	ctx, engine := newTestServer(t)
	invitee := createUser(t, ctx, entity.RoleContributor)

	invitation := entity.ProjectInvitation{
		UserID:    invitee.ID,
		ProjectID: entityProjectID(t, ctx),
		Status:    entity.InvitationStatusInvited,
	}
	require.NoError(t, ctx.DB.Create(&invitation).Error)

	rec := doJSON(t, engine, http.MethodPut, "/api/invitations/"+invitation.ID.String()+"/respond", tokenFor(t, invitee), map[string]interface{}{
		"status": "maybe",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyInvitations(t *testing.T) {
	ctx, engine := newTestServer(t)
	invitee := createUser(t, ctx, entity.RoleContributor)
	other := createUser(t, ctx, entity.RoleUser)

	projectID := entityProjectID(t, ctx)
	require.NoError(t, ctx.DB.Create(&entity.ProjectInvitation{UserID: invitee.ID, ProjectID: projectID, Status: entity.InvitationStatusInvited}).Error)
	require.NoError(t, ctx.DB.Create(&entity.ProjectInvitation{UserID: other.ID, ProjectID: projectID, Status: entity.InvitationStatusInvited}).Error)

	rec := doJSON(t, engine, http.MethodGet, "/api/invitations", tokenFor(t, invitee), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	invitations := body["invitations"].([]interface{})
	require.Len(t, invitations, 1)
}
