package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/cache"
	"storefront/internal/domain"
)

const defaultCacheTTL = 5 * time.Minute

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.AllowOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.AllowOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	ttl := deps.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	pageCache := cache.New[*domain.ProductPage](ttl)
	productCache := cache.New[*domain.Product](ttl)
	contentCache := cache.New[*domain.ProductContent](ttl)

	api := router.Group("/api")
	api.POST("/cart", createCartHandler(deps.Commerce, logger))
	api.GET("/cart/:cartId", getCartHandler(deps.Commerce, logger))
	api.POST("/cart/:cartId/items", addCartItemHandler(deps.Commerce, logger))
	api.PUT("/cart/:cartId/items", updateCartItemHandler(deps.Commerce, logger))
	api.DELETE("/cart/:cartId/items", removeCartItemHandler(deps.Commerce, logger))
	api.POST("/cart/:cartId/checkout", checkoutHandler(deps, logger))

	api.GET("/products", productsHandler(deps.Commerce, pageCache, logger))
	api.GET("/products/:handle", productHandler(deps.Commerce, productCache, logger))

	if deps.Content != nil {
		api.GET("/content/:handle", contentHandler(deps.Content, contentCache, logger))
	}

	if deps.SessionStore != nil {
		session := api.Group("/session")
		session.GET("/cart", getSessionCartHandler(deps, logger))
		session.POST("/cart/items", addSessionItemHandler(deps, logger))
		session.PUT("/cart/items", updateSessionItemHandler(deps, logger))
		session.DELETE("/cart/items", removeSessionItemHandler(deps, logger))
		session.DELETE("/cart", clearSessionCartHandler(deps, logger))
	}

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready", "sessions": "disabled"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
