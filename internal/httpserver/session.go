package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/cartsync"
)

// Session cart routes keep the cart identifier server-side, keyed by a
// session cookie, for flows without client-side storage. Each request
// gets its own cart component over the shared session store; the store
// key namespacing keeps sessions apart.

const (
	sessionCookie   = "storefront_session"
	sessionMaxAge   = 30 * 24 * 60 * 60
	sessionKeySpace = "cart:"
)

func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
	return id
}

func sessionCart(c *gin.Context, deps Deps, logger *log.Logger) *cartsync.CartSync {
	key := sessionKeySpace + sessionID(c)
	return cartsync.New(deps.Commerce, deps.SessionStore, key, logger)
}

func getSessionCartHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs := sessionCart(c, deps, logger)
		cs.Initialize(c.Request.Context())
		if msg := cs.Err(); msg != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, cs.Snapshot())
	}
}

func addSessionItemHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		cs := sessionCart(c, deps, logger)
		cs.AddLine(c.Request.Context(), req.MerchandiseID, req.Quantity)
		if msg := cs.Err(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, cs.Snapshot())
	}
}

func updateSessionItemHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		cs := sessionCart(c, deps, logger)
		cs.Initialize(c.Request.Context())
		if msg := cs.Err(); msg != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
			return
		}
		cs.UpdateLine(c.Request.Context(), req.LineID, req.Quantity)
		if msg := cs.Err(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, cs.Snapshot())
	}
}

func removeSessionItemHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		cs := sessionCart(c, deps, logger)
		cs.Initialize(c.Request.Context())
		if msg := cs.Err(); msg != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
			return
		}
		cs.RemoveLine(c.Request.Context(), req.LineID)
		if msg := cs.Err(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, cs.Snapshot())
	}
}

func clearSessionCartHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs := sessionCart(c, deps, logger)
		cs.ClearCart(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}
