// Package commerce is the client for the hosted commerce platform's
// storefront GraphQL API. All durable cart and catalog state lives on the
// platform; this client only moves it over the wire.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront/internal/domain"
)

const tokenHeader = "X-Shopify-Storefront-Access-Token"

type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// EndpointFor builds the GraphQL endpoint from a store domain and an API
// version, e.g. https://shop.example.com + 2025-01.
func EndpointFor(storeDomain, apiVersion string) string {
	return fmt.Sprintf("%s/api/%s/graphql.json", storeDomain, apiVersion)
}

func New(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, token: token, httpClient: httpClient}
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storefront api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("storefront api: unexpected status %d", resp.StatusCode)
	}

	var envelope graphQLEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("storefront api: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// mutationResult applies the userErrors convention shared by every cart
// mutation: executed-but-rejected requests come back as userErrors, not
// transport errors.
func mutationResult(cart *wireCart, userErrors []wireUserError, op string) (*domain.Cart, error) {
	if len(userErrors) > 0 {
		return nil, &domain.CartRejectedError{Errors: toUserErrors(userErrors)}
	}
	if cart == nil {
		return nil, fmt.Errorf("%s: no cart in response", op)
	}
	return cart.toDomain(), nil
}

// CreateCart creates a new empty cart and returns its representation.
func (c *Client) CreateCart(ctx context.Context) (*domain.Cart, error) {
	var data struct {
		CartCreate struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartCreate"`
	}
	if err := c.do(ctx, cartCreateMutation, map[string]any{"input": map[string]any{}}, &data); err != nil {
		return nil, err
	}
	return mutationResult(data.CartCreate.Cart, data.CartCreate.UserErrors, "cartCreate")
}

// FetchCart loads a cart by id. Returns domain.ErrNotFound when the
// platform no longer knows the id (expired or deleted cart).
func (c *Client) FetchCart(ctx context.Context, id string) (*domain.Cart, error) {
	var data struct {
		Cart *wireCart `json:"cart"`
	}
	if err := c.do(ctx, cartQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, domain.ErrNotFound
	}
	return data.Cart.toDomain(), nil
}

func (c *Client) AddLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	var data struct {
		CartLinesAdd struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartLinesAdd"`
	}
	vars := map[string]any{"cartId": cartID, "lines": lines}
	if err := c.do(ctx, cartLinesAddMutation, vars, &data); err != nil {
		return nil, err
	}
	return mutationResult(data.CartLinesAdd.Cart, data.CartLinesAdd.UserErrors, "cartLinesAdd")
}

func (c *Client) UpdateLines(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	var data struct {
		CartLinesUpdate struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartLinesUpdate"`
	}
	vars := map[string]any{"cartId": cartID, "lines": lines}
	if err := c.do(ctx, cartLinesUpdateMutation, vars, &data); err != nil {
		return nil, err
	}
	return mutationResult(data.CartLinesUpdate.Cart, data.CartLinesUpdate.UserErrors, "cartLinesUpdate")
}

func (c *Client) RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	var data struct {
		CartLinesRemove struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartLinesRemove"`
	}
	vars := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	if err := c.do(ctx, cartLinesRemoveMutation, vars, &data); err != nil {
		return nil, err
	}
	return mutationResult(data.CartLinesRemove.Cart, data.CartLinesRemove.UserErrors, "cartLinesRemove")
}

// Products returns one catalog page. after is the cursor from a previous
// page, empty for the first.
func (c *Client) Products(ctx context.Context, first int, after string) (*domain.ProductPage, error) {
	if first <= 0 {
		first = 20
	}
	vars := map[string]any{"first": first}
	if after != "" {
		vars["after"] = after
	}
	var data struct {
		Products struct {
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
			Nodes []wireProduct `json:"nodes"`
		} `json:"products"`
	}
	if err := c.do(ctx, productsQuery, vars, &data); err != nil {
		return nil, err
	}
	page := &domain.ProductPage{
		Products:    make([]domain.Product, 0, len(data.Products.Nodes)),
		HasNextPage: data.Products.PageInfo.HasNextPage,
		EndCursor:   data.Products.PageInfo.EndCursor,
	}
	for i := range data.Products.Nodes {
		page.Products = append(page.Products, *data.Products.Nodes[i].toDomain())
	}
	return page, nil
}

func (c *Client) ProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	var data struct {
		Product *wireProduct `json:"product"`
	}
	if err := c.do(ctx, productQuery, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, domain.ErrNotFound
	}
	return data.Product.toDomain(), nil
}
