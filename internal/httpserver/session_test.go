package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/store"
)

func sessionCookieFrom(t *testing.T, result *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range result.Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatalf("no session cookie set")
	return nil
}

func TestSessionCartIssuesCookieAndCreatesCart(t *testing.T) {
	commerce := &fakeCommerce{createCart: testCart("c1", 0)}
	kv := store.NewMemory()
	router := testRouter(Deps{Commerce: commerce, SessionStore: kv})

	w := doJSON(router, http.MethodGet, "/api/session/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body)
	}
	cookie := sessionCookieFrom(t, w.Result())
	if cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("bad session cookie %+v", cookie)
	}
	var cart domain.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cart.ID != "c1" {
		t.Fatalf("bad cart %+v", cart)
	}
	if id, err := kv.Get(context.Background(), sessionKeySpace+cookie.Value); err != nil || id != "c1" {
		t.Fatalf("cart id not stored under session key: %q %v", id, err)
	}
}

func TestSessionCartReusesCookie(t *testing.T) {
	commerce := &fakeCommerce{createCart: testCart("c1", 0), fetchCart: testCart("c1", 2)}
	kv := store.NewMemory()
	router := testRouter(Deps{Commerce: commerce, SessionStore: kv})

	first := doJSON(router, http.MethodGet, "/api/session/cart", nil)
	cookie := sessionCookieFrom(t, first.Result())

	second := doJSON(router, http.MethodGet, "/api/session/cart", nil, cookie)
	if second.Code != http.StatusOK {
		t.Fatalf("got %d: %s", second.Code, second.Body)
	}
	if commerce.fetchCalls != 1 || commerce.lastFetchID != "c1" {
		t.Fatalf("expected the saved cart to be fetched, calls=%d id=%q", commerce.fetchCalls, commerce.lastFetchID)
	}
	var cart domain.Cart
	if err := json.Unmarshal(second.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cart.TotalQuantity != 2 {
		t.Fatalf("expected the fetched cart, got %+v", cart)
	}
}

func TestSessionAddItem(t *testing.T) {
	commerce := &fakeCommerce{
		createCart: testCart("c1", 0),
		addResult:  testCart("c1", 1),
	}
	router := testRouter(Deps{Commerce: commerce, SessionStore: store.NewMemory()})

	w := doJSON(router, http.MethodPost, "/api/session/cart/items", map[string]any{"merchandiseId": "v1", "quantity": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body)
	}
	var cart domain.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cart.TotalQuantity != 1 {
		t.Fatalf("expected updated cart, got %+v", cart)
	}
}

func TestSessionAddItemRejectionIs400(t *testing.T) {
	commerce := &fakeCommerce{
		createCart: testCart("c1", 0),
		addErr:     &domain.CartRejectedError{Errors: []domain.UserError{{Field: "quantity", Message: "Out of stock"}}},
	}
	router := testRouter(Deps{Commerce: commerce, SessionStore: store.NewMemory()})

	w := doJSON(router, http.MethodPost, "/api/session/cart/items", map[string]any{"merchandiseId": "v1", "quantity": 99})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d", w.Code)
	}
	if errorBody(t, w) != "Out of stock" {
		t.Fatalf("bad message %q", errorBody(t, w))
	}
}

func TestSessionInitializeFailureIs502(t *testing.T) {
	commerce := &fakeCommerce{createErr: errors.New("platform down")}
	router := testRouter(Deps{Commerce: commerce, SessionStore: store.NewMemory()})

	w := doJSON(router, http.MethodGet, "/api/session/cart", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("got %d", w.Code)
	}
}

func TestSessionUpdateItemZeroRemoves(t *testing.T) {
	commerce := &fakeCommerce{
		createCart:   testCart("c1", 1),
		removeResult: testCart("c1", 0),
	}
	router := testRouter(Deps{Commerce: commerce, SessionStore: store.NewMemory()})

	w := doJSON(router, http.MethodPut, "/api/session/cart/items", map[string]any{"lineId": "line1", "quantity": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body)
	}
	if len(commerce.lastRemoveIDs) != 1 || commerce.lastRemoveIDs[0] != "line1" {
		t.Fatalf("expected removal, got %v (updates %v)", commerce.lastRemoveIDs, commerce.lastUpdateLines)
	}
}

func TestSessionClearCart(t *testing.T) {
	commerce := &fakeCommerce{createCart: testCart("c1", 0)}
	kv := store.NewMemory()
	router := testRouter(Deps{Commerce: commerce, SessionStore: kv})

	first := doJSON(router, http.MethodGet, "/api/session/cart", nil)
	cookie := sessionCookieFrom(t, first.Result())

	w := doJSON(router, http.MethodDelete, "/api/session/cart", nil, cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("got %d", w.Code)
	}
	if _, err := kv.Get(context.Background(), sessionKeySpace+cookie.Value); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("session cart id not cleared: %v", err)
	}
}

func TestSessionRoutesAbsentWithoutStore(t *testing.T) {
	router := testRouter(Deps{Commerce: &fakeCommerce{}})
	w := doJSON(router, http.MethodGet, "/api/session/cart", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("session routes must be absent, got %d", w.Code)
	}
}
