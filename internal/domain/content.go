package domain

// Editorial content attached to a product handle in the CMS. Any section
// may be absent; the storefront renders whatever is there.

type ProductContent struct {
	Features    *ProductFeatures    `json:"features,omitempty"`
	Description *ProductDescription `json:"description,omitempty"`
	Highlights  *ProductHighlights  `json:"highlights,omitempty"`
	FAQs        *ProductFAQs        `json:"faqs,omitempty"`
	Gallery     *ProductGallery     `json:"gallery,omitempty"`
}

type ProductFeatures struct {
	ProductHandle string    `json:"productHandle"`
	Features      []Feature `json:"features"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProductDescription struct {
	ProductHandle     string `json:"productHandle"`
	Description       string `json:"description,omitempty"`
	ReturnsAndRefunds string `json:"returnsAndRefunds,omitempty"`
	CareInstructions  string `json:"careInstructions,omitempty"`
}

type ProductHighlights struct {
	ProductHandle string      `json:"productHandle"`
	Title         string      `json:"title,omitempty"`
	Highlights    []Highlight `json:"highlights"`
}

type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type ProductFAQs struct {
	ProductHandle string `json:"productHandle"`
	Title         string `json:"title,omitempty"`
	FAQs          []FAQ  `json:"faqs"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ProductGallery struct {
	ProductHandle string        `json:"productHandle"`
	Title         string        `json:"title,omitempty"`
	MediaItems    []GalleryItem `json:"mediaItems"`
}

type GalleryItem struct {
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	Order    int    `json:"order,omitempty"`
}
