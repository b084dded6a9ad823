package domain

import "github.com/shopspring/decimal"

// Money pairs a decimal amount with an ISO currency code, matching the
// string-amount representation the commerce platform uses on the wire.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// CartCost carries the server-computed totals for a cart. Tax is only
// present once the platform has enough information to compute it.
type CartCost struct {
	Subtotal Money  `json:"subtotalAmount"`
	Total    Money  `json:"totalAmount"`
	Tax      *Money `json:"totalTaxAmount,omitempty"`
}

// Merchandise identifies the purchasable variant behind a cart line.
type Merchandise struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Price           Money            `json:"price"`
	Image           *Image           `json:"image,omitempty"`
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
	ProductID       string           `json:"productId"`
	ProductTitle    string           `json:"productTitle"`
	ProductHandle   string           `json:"productHandle"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type CartLine struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise Merchandise `json:"merchandise"`
}

// Cart is the local mirror of the remote cart resource. Every field is
// authoritative server output; nothing in it is computed locally.
type Cart struct {
	ID            string     `json:"id"`
	TotalQuantity int        `json:"totalQuantity"`
	Cost          CartCost   `json:"cost"`
	Lines         []CartLine `json:"lines"`
	CheckoutURL   string     `json:"checkoutUrl"`
}

// CartLineInput describes a line to add to a cart.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdate changes the quantity of an existing line.
type CartLineUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}
