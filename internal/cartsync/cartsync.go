// Package cartsync keeps a local snapshot of a shopper's cart in sync
// with the commerce platform. The platform is the sole source of truth:
// every mutation replaces the snapshot wholesale with the server's
// response, nothing is merged or computed locally.
package cartsync

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// DefaultStoreKey is the key the cart identifier is persisted under when
// the embedding layer does not namespace it.
const DefaultStoreKey = "storefront-cart-id"

// CartClient is the slice of the commerce platform API this component
// needs. Every mutation returns the full updated cart.
type CartClient interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	FetchCart(ctx context.Context, id string) (*domain.Cart, error)
	AddLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	UpdateLines(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error)
	RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
}

// KV is the durable store holding the cart identifier across sessions.
// Get returns an error when the key has no value.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// CartSync owns exactly one local cart view. Failures on remote calls are
// recorded as component state (Err) and never escape to the caller; the
// last-known-good snapshot stays in place until a later success replaces
// it. Concurrent mutations are not serialized: both requests go out and
// whichever response settles last wins the snapshot.
type CartSync struct {
	client   CartClient
	kv       KV
	storeKey string
	logger   *log.Logger

	mu       sync.Mutex
	cart     *domain.Cart
	inflight int
	errMsg   string
}

func New(client CartClient, kv KV, storeKey string, logger *log.Logger) *CartSync {
	if storeKey == "" {
		storeKey = DefaultStoreKey
	}
	return &CartSync{client: client, kv: kv, storeKey: storeKey, logger: logger}
}

// Initialize loads the persisted cart if one exists, otherwise creates a
// fresh cart and persists its identifier. A persisted identifier the
// platform no longer resolves falls back to creation silently.
func (s *CartSync) Initialize(ctx context.Context) {
	s.begin()
	cart, err := s.resolveCart(ctx)
	if err != nil {
		s.fail(failureMessage(err, "failed to create cart"))
		return
	}
	s.adopt(cart)
}

// RefreshCart re-reads the persisted identifier and re-fetches from the
// platform. Use it to recover from a suspected stale view.
func (s *CartSync) RefreshCart(ctx context.Context) {
	s.Initialize(ctx)
}

// AddLine adds quantity units of a variant to the cart, creating a cart
// first if none exists. Quantities below one mean one.
func (s *CartSync) AddLine(ctx context.Context, merchandiseID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.begin()
	cartID, ok := s.ensureCart(ctx)
	if !ok {
		return
	}
	lines := []domain.CartLineInput{{MerchandiseID: merchandiseID, Quantity: quantity}}
	cart, err := s.client.AddLines(ctx, cartID, lines)
	if err != nil {
		s.fail(failureMessage(err, "failed to add item to cart"))
		return
	}
	s.adopt(cart)
}

// UpdateLine changes the quantity of an existing line. A target quantity
// of zero or less removes the line instead of updating it.
func (s *CartSync) UpdateLine(ctx context.Context, lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(ctx, lineID)
		return
	}
	s.begin()
	cartID, ok := s.currentCartID()
	if !ok {
		s.fail(domain.ErrNoCart.Error())
		return
	}
	lines := []domain.CartLineUpdate{{ID: lineID, Quantity: quantity}}
	cart, err := s.client.UpdateLines(ctx, cartID, lines)
	if err != nil {
		s.fail(failureMessage(err, "failed to update cart item"))
		return
	}
	s.adopt(cart)
}

// RemoveLine removes an existing line from the cart.
func (s *CartSync) RemoveLine(ctx context.Context, lineID string) {
	s.begin()
	cartID, ok := s.currentCartID()
	if !ok {
		s.fail(domain.ErrNoCart.Error())
		return
	}
	cart, err := s.client.RemoveLines(ctx, cartID, []string{lineID})
	if err != nil {
		s.fail(failureMessage(err, "failed to remove item from cart"))
		return
	}
	s.adopt(cart)
}

// ClearCart drops the snapshot and the persisted identifier without
// contacting the platform. The next operation starts from scratch.
func (s *CartSync) ClearCart(ctx context.Context) {
	if err := s.kv.Remove(ctx, s.storeKey); err != nil && s.logger != nil {
		s.logger.Printf("cartsync: remove persisted cart id: %v", err)
	}
	s.mu.Lock()
	s.cart = nil
	s.errMsg = ""
	s.mu.Unlock()
}

// ItemCount returns the server-reported total quantity, zero without a
// snapshot. Pure read, never triggers a fetch.
func (s *CartSync) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.TotalQuantity
}

// Total returns the cart's total amount, zero without a snapshot. Pure
// read, never triggers a fetch.
func (s *CartSync) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return decimal.Zero
	}
	return s.cart.Cost.Total.Amount
}

// Snapshot returns the current cart view, nil when uninitialized. Callers
// must treat it as read-only; all changes flow through the operations.
func (s *CartSync) Snapshot() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Loading reports whether any operation is in flight.
func (s *CartSync) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the message of the most recent failed operation, empty
// after a success or a clear.
func (s *CartSync) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// resolveCart fetches the persisted cart or creates a new one, persisting
// the fresh identifier. It does not touch component state.
func (s *CartSync) resolveCart(ctx context.Context) (*domain.Cart, error) {
	if id, err := s.kv.Get(ctx, s.storeKey); err == nil && id != "" {
		if cart, err := s.client.FetchCart(ctx, id); err == nil {
			return cart, nil
		}
		// Expired, deleted or unreachable cart: fall through to creation.
	}
	cart, err := s.client.CreateCart(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, s.storeKey, cart.ID); err != nil && s.logger != nil {
		s.logger.Printf("cartsync: persist cart id: %v", err)
	}
	return cart, nil
}

// ensureCart returns the id of the current cart, resolving or creating
// one when the component has no snapshot yet. Called with an operation
// already begun; on failure it settles the operation itself.
func (s *CartSync) ensureCart(ctx context.Context) (string, bool) {
	if id, ok := s.currentCartID(); ok {
		return id, true
	}
	cart, err := s.resolveCart(ctx)
	if err != nil {
		s.fail(failureMessage(err, "failed to create cart"))
		return "", false
	}
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	return cart.ID, true
}

func (s *CartSync) currentCartID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return "", false
	}
	return s.cart.ID, true
}

func (s *CartSync) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *CartSync) adopt(cart *domain.Cart) {
	s.mu.Lock()
	s.cart = cart
	s.errMsg = ""
	s.inflight--
	s.mu.Unlock()
}

func (s *CartSync) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.inflight--
	s.mu.Unlock()
}

// failureMessage surfaces the platform's first business-rule rejection
// verbatim and collapses everything else into a generic message.
func failureMessage(err error, generic string) string {
	var rejected *domain.CartRejectedError
	if errors.As(err, &rejected) && len(rejected.Errors) > 0 {
		return rejected.Errors[0].Message
	}
	return generic
}
