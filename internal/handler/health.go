package handler

import (
	"net/http"

	"github.com/mneis/alternative-communicator/internal/store"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus catalog counts. The store lives in process
// memory, so there is no external dependency to probe.
func Health(catalog store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cats, catErr := catalog.ListCategories(ctx)
		cards, cardErr := catalog.ListCards(ctx)
		if catErr != nil || cardErr != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"categories": len(cats),
			"cards":      len(cards),
		})
	}
}
