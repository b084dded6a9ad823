package commerce

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// Wire shapes of the storefront GraphQL API. Amounts arrive as decimal
// strings; shopspring/decimal unmarshals them either way.

type wireMoney struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

type wireImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type wireUserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type wireCart struct {
	ID            string `json:"id"`
	TotalQuantity int    `json:"totalQuantity"`
	Cost          struct {
		TotalAmount    wireMoney  `json:"totalAmount"`
		SubtotalAmount wireMoney  `json:"subtotalAmount"`
		TotalTaxAmount *wireMoney `json:"totalTaxAmount"`
	} `json:"cost"`
	Lines struct {
		Nodes []wireCartLine `json:"nodes"`
	} `json:"lines"`
	CheckoutURL string `json:"checkoutUrl"`
}

type wireCartLine struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Merchandise struct {
		ID              string                  `json:"id"`
		Title           string                  `json:"title"`
		Price           wireMoney               `json:"price"`
		SelectedOptions []domain.SelectedOption `json:"selectedOptions"`
		Image           *wireImage              `json:"image"`
		Product         struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Handle string `json:"handle"`
			Images struct {
				Nodes []wireImage `json:"nodes"`
			} `json:"images"`
		} `json:"product"`
	} `json:"merchandise"`
}

type wireProduct struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Handle           string   `json:"handle"`
	Description      string   `json:"description"`
	Tags             []string `json:"tags"`
	AvailableForSale bool     `json:"availableForSale"`
	PriceRange       struct {
		MinVariantPrice wireMoney `json:"minVariantPrice"`
		MaxVariantPrice wireMoney `json:"maxVariantPrice"`
	} `json:"priceRange"`
	CompareAtPriceRange *struct {
		MinVariantPrice wireMoney `json:"minVariantPrice"`
		MaxVariantPrice wireMoney `json:"maxVariantPrice"`
	} `json:"compareAtPriceRange"`
	Images struct {
		Nodes []wireImage `json:"nodes"`
	} `json:"images"`
	Variants struct {
		Nodes []struct {
			ID               string                  `json:"id"`
			Title            string                  `json:"title"`
			AvailableForSale bool                    `json:"availableForSale"`
			Price            wireMoney               `json:"price"`
			CompareAtPrice   *wireMoney              `json:"compareAtPrice"`
			SelectedOptions  []domain.SelectedOption `json:"selectedOptions"`
		} `json:"nodes"`
	} `json:"variants"`
	Options []domain.ProductOption `json:"options"`
}

func (m wireMoney) toDomain() domain.Money {
	return domain.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func (i wireImage) toDomain() domain.Image {
	return domain.Image{ID: i.ID, URL: i.URL, Alt: i.AltText}
}

func (c *wireCart) toDomain() *domain.Cart {
	out := &domain.Cart{
		ID:            c.ID,
		TotalQuantity: c.TotalQuantity,
		CheckoutURL:   c.CheckoutURL,
		Cost: domain.CartCost{
			Subtotal: c.Cost.SubtotalAmount.toDomain(),
			Total:    c.Cost.TotalAmount.toDomain(),
		},
		Lines: make([]domain.CartLine, 0, len(c.Lines.Nodes)),
	}
	if c.Cost.TotalTaxAmount != nil {
		tax := c.Cost.TotalTaxAmount.toDomain()
		out.Cost.Tax = &tax
	}
	for _, l := range c.Lines.Nodes {
		line := domain.CartLine{
			ID:       l.ID,
			Quantity: l.Quantity,
			Merchandise: domain.Merchandise{
				ID:              l.Merchandise.ID,
				Title:           l.Merchandise.Title,
				Price:           l.Merchandise.Price.toDomain(),
				SelectedOptions: l.Merchandise.SelectedOptions,
				ProductID:       l.Merchandise.Product.ID,
				ProductTitle:    l.Merchandise.Product.Title,
				ProductHandle:   l.Merchandise.Product.Handle,
			},
		}
		if l.Merchandise.Image != nil {
			img := l.Merchandise.Image.toDomain()
			line.Merchandise.Image = &img
		} else if len(l.Merchandise.Product.Images.Nodes) > 0 {
			img := l.Merchandise.Product.Images.Nodes[0].toDomain()
			line.Merchandise.Image = &img
		}
		out.Lines = append(out.Lines, line)
	}
	return out
}

func (p *wireProduct) toDomain() *domain.Product {
	out := &domain.Product{
		ID:               p.ID,
		Title:            p.Title,
		Handle:           p.Handle,
		Description:      p.Description,
		Tags:             p.Tags,
		AvailableForSale: p.AvailableForSale,
		PriceRange: domain.PriceRange{
			Min: p.PriceRange.MinVariantPrice.toDomain(),
			Max: p.PriceRange.MaxVariantPrice.toDomain(),
		},
		Options: p.Options,
	}
	if p.CompareAtPriceRange != nil {
		out.CompareAtPriceRange = &domain.PriceRange{
			Min: p.CompareAtPriceRange.MinVariantPrice.toDomain(),
			Max: p.CompareAtPriceRange.MaxVariantPrice.toDomain(),
		}
	}
	for _, img := range p.Images.Nodes {
		out.Images = append(out.Images, img.toDomain())
	}
	for _, v := range p.Variants.Nodes {
		variant := domain.ProductVariant{
			ID:               v.ID,
			Title:            v.Title,
			Price:            v.Price.toDomain(),
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  v.SelectedOptions,
		}
		if v.CompareAtPrice != nil {
			cmp := v.CompareAtPrice.toDomain()
			variant.CompareAtPrice = &cmp
		}
		out.Variants = append(out.Variants, variant)
	}
	return out
}

func toUserErrors(in []wireUserError) []domain.UserError {
	out := make([]domain.UserError, 0, len(in))
	for _, ue := range in {
		field := ""
		if len(ue.Field) > 0 {
			field = ue.Field[len(ue.Field)-1]
		}
		out = append(out, domain.UserError{Field: field, Message: ue.Message})
	}
	return out
}
