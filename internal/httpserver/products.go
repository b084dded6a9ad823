package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/cache"
	"storefront/internal/domain"
)

func productsHandler(client CommerceClient, pages *cache.Cache[*domain.ProductPage], logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		first, err := strconv.Atoi(c.DefaultQuery("first", "20"))
		if err != nil || first < 1 {
			first = 20
		}
		after := c.Query("after")

		key := fmt.Sprintf("first=%d&after=%s", first, after)
		if page, ok := pages.Get(key); ok {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, page)
			return
		}

		page, err := client.Products(c.Request.Context(), first, after)
		if err != nil {
			logger.Printf("fetch products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		pages.Set(key, page)
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, page)
	}
}

func productHandler(client CommerceClient, products *cache.Cache[*domain.Product], logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")
		if product, ok := products.Get(handle); ok {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, product)
			return
		}

		product, err := client.ProductByHandle(c.Request.Context(), handle)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logger.Printf("fetch product %q: %v", handle, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		products.Set(handle, product)
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, product)
	}
}
