package domain

type Image struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
	Alt string `json:"altText,omitempty"`
}

type ProductVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions,omitempty"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type PriceRange struct {
	Min Money `json:"minVariantPrice"`
	Max Money `json:"maxVariantPrice"`
}

type Product struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Handle              string           `json:"handle"`
	Description         string           `json:"description"`
	Tags                []string         `json:"tags,omitempty"`
	AvailableForSale    bool             `json:"availableForSale"`
	PriceRange          PriceRange       `json:"priceRange"`
	CompareAtPriceRange *PriceRange      `json:"compareAtPriceRange,omitempty"`
	Images              []Image          `json:"images,omitempty"`
	Variants            []ProductVariant `json:"variants,omitempty"`
	Options             []ProductOption  `json:"options,omitempty"`
}

// ProductPage is one page of the catalog with cursors for the next fetch.
type ProductPage struct {
	Products    []Product `json:"products"`
	HasNextPage bool      `json:"hasNextPage"`
	EndCursor   string    `json:"endCursor,omitempty"`
}
