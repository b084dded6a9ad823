package events

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

func TestNewCheckoutStarted(t *testing.T) {
	cart := &domain.Cart{
		ID:            "gid://shopify/Cart/c1",
		TotalQuantity: 3,
		Cost: domain.CartCost{
			Total: domain.Money{Amount: decimal.RequireFromString("29.97"), CurrencyCode: "USD"},
		},
		Lines: []domain.CartLine{
			{ID: "line1", Quantity: 2, Merchandise: domain.Merchandise{ID: "v1"}},
			{ID: "line2", Quantity: 1, Merchandise: domain.Merchandise{ID: "v2"}},
		},
	}

	env := NewCheckoutStarted(cart)

	if env.EventName != CheckoutStartedEventName || env.EventVersion != CheckoutStartedVersion {
		t.Fatalf("bad envelope header %+v", env)
	}
	if env.EventID == "" {
		t.Fatalf("missing event id")
	}
	if time.Since(env.OccurredAt) > time.Minute || env.OccurredAt.Location() != time.UTC {
		t.Fatalf("bad timestamp %v", env.OccurredAt)
	}
	if env.Payload.CartID != cart.ID || env.Payload.TotalQuantity != 3 {
		t.Fatalf("bad payload %+v", env.Payload)
	}
	if !env.Payload.TotalAmount.Equal(decimal.RequireFromString("29.97")) || env.Payload.Currency != "USD" {
		t.Fatalf("bad amount %s %s", env.Payload.TotalAmount, env.Payload.Currency)
	}
	if len(env.Payload.Lines) != 2 || env.Payload.Lines[0].MerchandiseID != "v1" || env.Payload.Lines[1].Quantity != 1 {
		t.Fatalf("bad lines %+v", env.Payload.Lines)
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	cart := &domain.Cart{ID: "c1"}
	a := NewCheckoutStarted(cart)
	b := NewCheckoutStarted(cart)
	if a.EventID == b.EventID {
		t.Fatalf("event ids must differ")
	}
}
