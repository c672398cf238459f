package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-hq/ascend/internal/entity"
)

func TestCreateAmbitionAndRefetch(t *testing.T) {
	ctx, engine := newTestServer(t)
	manager := createUser(t, ctx, entity.RoleManager)
	token := tokenFor(t, manager)

	rec := doJSON(t, engine, http.MethodPost, "/api/ambitions", token, map[string]interface{}{
		"name":        "Digital Transformation Initiative",
		"description": "Transform our digital capabilities",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	ambition := body["ambition"].(map[string]interface{})
	assert.Equal(t, "Digital Transformation Initiative", ambition["name"])
	assert.Equal(t, manager.ID.String(), ambition["created_by_id"])

	rec = doJSON(t, engine, http.MethodGet, "/api/ambitions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body = decodeBody(t, rec)
	ambitions := body["ambitions"].([]interface{})
	require.Len(t, ambitions, 1)
}

func TestCreateAmbitionRequiresName(t *testing.T) {
	ctx, engine := newTestServer(t)
	token := tokenFor(t, createUser(t, ctx, entity.RoleLeader))

	rec := doJSON(t, engine, http.MethodPost, "/api/ambitions", token, map[string]interface{}{
		"description": "no name",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	ctx.DB.Model(&entity.Ambition{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAmbitionRequiresManagement(t *testing.T) {
	ctx, engine := newTestServer(t)

	for _, role := range []string{entity.RoleContributor, entity.RoleIntern, entity.RoleUser} {
		token := tokenFor(t, createUser(t, ctx, role))
		rec := doJSON(t, engine, http.MethodPost, "/api/ambitions", token, map[string]interface{}{
			"name": "Forbidden",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %q should not create ambitions", role)
	}
}

func TestGetAmbitionsFilteredBySearch(t *testing.T) {
	ctx, engine := newTestServer(t)
	token := tokenFor(t, createUser(t, ctx, entity.RoleUser))

	require.NoError(t, ctx.DB.Create(&entity.Ambition{Name: "Cloud Migration", Description: "move to the cloud"}).Error)
	require.NoError(t, ctx.DB.Create(&entity.Ambition{Name: "Retail Expansion", Description: "new stores"}).Error)

	rec := doJSON(t, engine, http.MethodGet, "/api/ambitions?q=cloud", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	ambitions := body["ambitions"].([]interface{})
	require.Len(t, ambitions, 1)
	assert.Equal(t, "Cloud Migration", ambitions[0].(map[string]interface{})["name"])
}

func TestDeleteAmbition(t *testing.T) {
	ctx, engine := newTestServer(t)
	token := tokenFor(t, createUser(t, ctx, entity.RoleLeader))

	ambition := entity.Ambition{Name: "Short-lived"}
	require.NoError(t, ctx.DB.Create(&ambition).Error)

	rec := doJSON(t, engine, http.MethodDelete, "/api/ambitions/"+ambition.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	ctx.DB.Model(&entity.Ambition{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteAmbitionNotFoundLeavesListUntouched(t *testing.T) {
	ctx, engine := newTestServer(t)
	token := tokenFor(t, createUser(t, ctx, entity.RoleLeader))

	ambition := entity.Ambition{Name: "Survivor"}
	require.NoError(t, ctx.DB.Create(&ambition).Error)

	rec := doJSON(t, engine, http.MethodDelete, "/api/ambitions/00000000-0000-0000-0000-000000000001", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])

	var count int64
	ctx.DB.Model(&entity.Ambition{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
