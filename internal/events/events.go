// Package events publishes storefront analytics events. Publishing is
// best-effort and optional; the storefront works without a broker.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

const (
	Exchange = "storefront.events"

	CheckoutStartedEventName  = "CheckoutStarted"
	CheckoutStartedVersion    = 1
	CheckoutStartedRoutingKey = "cart.checkout_started.v1"

	producer = "storefront-api"
)

type Publisher interface {
	CheckoutStarted(ctx context.Context, cart *domain.Cart) error
	Close() error
}

type Envelope struct {
	EventName    string                 `json:"eventName"`
	EventVersion int                    `json:"eventVersion"`
	EventID      string                 `json:"eventId"`
	Producer     string                 `json:"producer"`
	OccurredAt   time.Time              `json:"occurredAt"`
	Payload      CheckoutStartedPayload `json:"payload"`
}

type CheckoutStartedPayload struct {
	CartID        string          `json:"cartId"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Currency      string          `json:"currency"`
	Lines         []CheckoutLine  `json:"lines"`
}

type CheckoutLine struct {
	LineID        string `json:"lineId"`
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// NewCheckoutStarted builds the enveloped event for a cart handed off to
// hosted checkout.
func NewCheckoutStarted(cart *domain.Cart) Envelope {
	payload := CheckoutStartedPayload{
		CartID:        cart.ID,
		TotalQuantity: cart.TotalQuantity,
		TotalAmount:   cart.Cost.Total.Amount,
		Currency:      cart.Cost.Total.CurrencyCode,
	}
	for _, line := range cart.Lines {
		payload.Lines = append(payload.Lines, CheckoutLine{
			LineID:        line.ID,
			MerchandiseID: line.Merchandise.ID,
			Quantity:      line.Quantity,
		})
	}
	return Envelope{
		EventName:    CheckoutStartedEventName,
		EventVersion: CheckoutStartedVersion,
		EventID:      uuid.NewString(),
		Producer:     producer,
		OccurredAt:   time.Now().UTC(),
		Payload:      payload,
	}
}
