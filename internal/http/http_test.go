package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/config"
	"github.com/ascend-hq/ascend/internal/entity"
	"github.com/ascend-hq/ascend/internal/matching"
	"github.com/ascend-hq/ascend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) *appcontext.Context {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	return &appcontext.Context{
		DB:             db,
		Logger:         zap.NewNop(),
		KeywordMatcher: matching.NewKeywordMatcher(),
	}
}

func newTestServer(t *testing.T) (*appcontext.Context, *gin.Engine) {
	t.Helper()
	ctx := newTestContext(t)
	return ctx, NewHTTPService(ctx).Engine()
}

func createUser(t *testing.T, ctx *appcontext.Context, role string) entity.User {
	t.Helper()
	user := entity.User{
		Email:  role + "@example.com",
		Name:   "Test " + role,
		Role:   role,
		Status: "active",
	}
	require.NoError(t, ctx.DB.Create(&user).Error)
	return user
}

func entityProjectID(t *testing.T, ctx *appcontext.Context) uuid.UUID {
	t.Helper()
	ambition := entity.Ambition{Name: "Fixture Ambition"}
	require.NoError(t, ctx.DB.Create(&ambition).Error)
	project := entity.Project{Name: "Fixture Project", AmbitionID: ambition.ID}
	require.NoError(t, ctx.DB.Create(&project).Error)
	return project.ID
}

func tokenFor(t *testing.T, user entity.User) string {
	t.Helper()
	token, err := utils.GenerateJWT(user.ID.String())
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
