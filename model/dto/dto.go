// Package dto holds the wire shapes of the catalog API. The REST
// handlers, GraphQL resolvers, storefront client and structured-data
// builders all share these types.
package dto

import "time"

type Category struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Image        *string   `json:"image"`
	IsActive     bool      `json:"is_active"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Subcategory struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Image        *string   `json:"image"`
	IsActive     bool      `json:"is_active"`
	Category     Category  `json:"category"`
	CategoryID   uint      `json:"category_id"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProductImage struct {
	ID        uint      `json:"id"`
	Image     string    `json:"image"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	IsPrimary bool      `json:"is_primary"`
	Order     uint      `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductReview struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Comment      string    `json:"comment"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Slug             string                 `json:"slug"`
	SKU              string                 `json:"sku"`
	Category         Category               `json:"category"`
	Subcategory      Subcategory            `json:"subcategory"`
	CategoryID       uint                   `json:"category_id"`
	SubcategoryID    uint                   `json:"subcategory_id"`
	ShortDescription string                 `json:"short_description"`
	Description      string                 `json:"description"`
	Price            string                 `json:"price"`
	SalePrice        *string                `json:"sale_price"`
	CostPrice        *string                `json:"cost_price"`
	StockQuantity    uint                   `json:"stock_quantity"`
	LowStockThreshold uint                  `json:"low_stock_threshold"`
	Material         string                 `json:"material"`
	Finish           string                 `json:"finish"`
	DimensionsLength *float64               `json:"dimensions_length"`
	DimensionsWidth  *float64               `json:"dimensions_width"`
	DimensionsHeight *float64               `json:"dimensions_height"`
	Weight           *float64               `json:"weight"`
	Color            string                 `json:"color"`
	Features         []string               `json:"features"`
	Specifications   map[string]interface{} `json:"specifications"`
	IsActive         bool                   `json:"is_active"`
	IsFeatured       bool                   `json:"is_featured"`
	IsBestseller     bool                   `json:"is_bestseller"`
	MetaTitle        string                 `json:"meta_title"`
	MetaDescription  string                 `json:"meta_description"`
	Images           []ProductImage         `json:"images"`
	PrimaryImage     *ProductImage          `json:"primary_image"`
	Reviews          []ProductReview        `json:"reviews"`
	AverageRating    float64                `json:"average_rating"`
	ReviewCount      int                    `json:"review_count"`
	RelatedProducts  []Product              `json:"related_products,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// ProductListResponse is one page of a larger collection; Count is the
// total across all pages.
type ProductListResponse struct {
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Product `json:"results"`
}

type CategoryListResponse struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Category `json:"results"`
}

type SubcategoryListResponse struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []Subcategory `json:"results"`
}
