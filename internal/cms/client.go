// Package cms fetches supplementary editorial content (FAQs, highlights,
// descriptions, galleries) from the headless CMS. Content is overlay
// material: a product with no content entry is not an error.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain"
)

// One projection for everything the product page needs, so a page load
// costs a single CMS round trip.
const productContentQuery = `{
  "features": *[_type == "productFeatures" && productHandle == $productHandle][0]{
    productHandle,
    features[]{ title, description }
  },
  "description": *[_type == "productDescription" && productHandle == $productHandle][0]{
    productHandle, description, returnsAndRefunds, careInstructions
  },
  "highlights": *[_type == "productHighlights" && productHandle == $productHandle][0]{
    productHandle, title,
    highlights[]{ title, description, "imageUrl": image.asset->url }
  },
  "faqs": *[_type == "productFAQs" && productHandle == $productHandle][0]{
    productHandle, title,
    faqs[]{ question, answer }
  },
  "gallery": *[_type == "productGallery" && productHandle == $productHandle][0]{
    productHandle, title,
    mediaItems[]{ type, "imageUrl": image.asset->url, videoUrl, order }
  }
}`

type Client struct {
	baseURL    string
	dataset    string
	token      string
	httpClient *http.Client
}

// EndpointFor builds the CMS API base URL for a project and API version.
func EndpointFor(projectID, apiVersion string) string {
	return fmt.Sprintf("https://%s.api.sanity.io/v%s", projectID, apiVersion)
}

func New(baseURL, dataset, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, dataset: dataset, token: token, httpClient: httpClient}
}

// ProductContent runs the combined content query for one product handle.
func (c *Client) ProductContent(ctx context.Context, handle string) (*domain.ProductContent, error) {
	params := url.Values{}
	params.Set("query", productContentQuery)
	params.Set("$productHandle", strconv.Quote(handle))

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, c.dataset, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cms api: unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Result *domain.ProductContent `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if envelope.Result == nil {
		return &domain.ProductContent{}, nil
	}
	return envelope.Result, nil
}
