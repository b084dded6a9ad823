package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cache"
	"storefront/internal/domain"
)

func contentHandler(client ContentClient, contents *cache.Cache[*domain.ProductContent], logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")
		if content, ok := contents.Get(handle); ok {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, content)
			return
		}

		content, err := client.ProductContent(c.Request.Context(), handle)
		if err != nil {
			logger.Printf("fetch content %q: %v", handle, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
			return
		}
		contents.Set(handle, content)
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, content)
	}
}
