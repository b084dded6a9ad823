package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type addItemRequest struct {
	MerchandiseID string `json:"merchandiseId" binding:"required"`
	Quantity      int    `json:"quantity"`
}

type updateItemRequest struct {
	LineID   string `json:"lineId" binding:"required"`
	Quantity int    `json:"quantity"`
}

type removeItemRequest struct {
	LineID string `json:"lineId" binding:"required"`
}

// writeCartError maps client errors onto the response contract: business
// rejections become 400 with the platform's first message, missing carts
// 404, everything else a generic 500.
func writeCartError(c *gin.Context, logger *log.Logger, err error, generic string) {
	var rejected *domain.CartRejectedError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.As(err, &rejected):
		c.JSON(http.StatusBadRequest, gin.H{"error": rejected.Error()})
	default:
		logger.Printf("cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}

func createCartHandler(client CommerceClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := client.CreateCart(c.Request.Context())
		if err != nil {
			writeCartError(c, logger, err, "Failed to create cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func getCartHandler(client CommerceClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := client.FetchCart(c.Request.Context(), c.Param("cartId"))
		if err != nil {
			writeCartError(c, logger, err, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(client CommerceClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}
		lines := []domain.CartLineInput{{MerchandiseID: req.MerchandiseID, Quantity: req.Quantity}}
		cart, err := client.AddLines(c.Request.Context(), c.Param("cartId"), lines)
		if err != nil {
			writeCartError(c, logger, err, "Failed to add item to cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func updateCartItemHandler(client CommerceClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		lines := []domain.CartLineUpdate{{ID: req.LineID, Quantity: req.Quantity}}
		cart, err := client.UpdateLines(c.Request.Context(), c.Param("cartId"), lines)
		if err != nil {
			writeCartError(c, logger, err, "Failed to update cart item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func removeCartItemHandler(client CommerceClient, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		cart, err := client.RemoveLines(c.Request.Context(), c.Param("cartId"), []string{req.LineID})
		if err != nil {
			writeCartError(c, logger, err, "Failed to remove item from cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

// checkoutHandler resolves the hosted checkout URL for a cart and emits a
// checkout-started event when a publisher is configured. Navigation is
// the caller's job.
func checkoutHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := deps.Commerce.FetchCart(c.Request.Context(), c.Param("cartId"))
		if err != nil {
			writeCartError(c, logger, err, "Failed to fetch cart")
			return
		}
		if deps.Publisher != nil {
			if err := deps.Publisher.CheckoutStarted(c.Request.Context(), cart); err != nil {
				logger.Printf("publish checkout event: %v", err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"checkoutUrl": cart.CheckoutURL})
	}
}
