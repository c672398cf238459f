package appcontext

import (
	"cloud.google.com/go/storage"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"github.com/ascend-hq/ascend/internal/matching"
)

type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger

	GCSClient     *storage.Client
	GCSBucketName string

	OAuth2Config      *oauth2.Config
	MeilisearchClient *meilisearch.Client

	KeywordMatcher matching.Matcher
	// AIMatcher is nil when no Gemini API key is configured.
	AIMatcher matching.Matcher

	ChatConfig ChatWidgetConfig
}

// ChatWidgetConfig is the embeddable chat widget's bootstrap configuration.
// It is built once at startup and served to the frontend, which hands it to
// the vendor loader instead of mutating a window-scoped global.
type ChatWidgetConfig struct {
	Enabled         bool   `json:"enabled"`
	OrchestrationID string `json:"orchestration_id,omitempty"`
	HostURL         string `json:"host_url,omitempty"`
	CRN             string `json:"crn,omitempty"`
}
