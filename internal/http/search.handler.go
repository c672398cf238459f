package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
)

func SearchResources(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
			return
		}

		var typeFilter string
		var actualQuery string

		switch {
		case strings.HasPrefix(query, "amb:"):
			typeFilter = "type = ambition"
			actualQuery = strings.TrimPrefix(query, "amb:")
		case strings.HasPrefix(query, "proj:"):
			typeFilter = "type = project"
			actualQuery = strings.TrimPrefix(query, "proj:")
		case strings.HasPrefix(query, "cv:"):
			typeFilter = "type = resume"
			actualQuery = strings.TrimPrefix(query, "cv:")
		default:
			typeFilter = "type IN [ambition, project, resume]"
			actualQuery = query
		}

		searchParams := &meilisearch.SearchRequest{
			Query:  actualQuery,
			Filter: typeFilter,
		}

		searchResult, err := ctx.MeilisearchClient.Index("talent").Search(actualQuery, searchParams)
		if err != nil {
			ctx.Logger.Error("Failed to perform search", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to perform search"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"results": searchResult.Hits})
	}
}

// indexDocument pushes a document into the talent index. Indexing is
// best-effort: persistence already succeeded, so a search outage only costs
// index freshness.
func indexDocument(ctx *appcontext.Context, document map[string]interface{}) {
	if ctx.MeilisearchClient == nil {
		return
	}
	if _, err := ctx.MeilisearchClient.Index("talent").AddDocuments([]map[string]interface{}{document}); err != nil {
		ctx.Logger.Warn("Failed to index document", zap.Error(err))
	}
}

func removeDocument(ctx *appcontext.Context, id string) {
	if ctx.MeilisearchClient == nil {
		return
	}
	if _, err := ctx.MeilisearchClient.Index("talent").DeleteDocument(id); err != nil {
		ctx.Logger.Warn("Failed to remove document from index", zap.Error(err))
	}
}
