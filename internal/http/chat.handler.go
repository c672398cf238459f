package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascend-hq/ascend/internal/appcontext"
)

// GetChatConfig serves the chat widget bootstrap configuration. The value is
// built once at startup; the frontend passes it to the vendor loader rather
// than assembling a global configuration object itself.
func GetChatConfig(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"chat": ctx.ChatConfig})
	}
}
