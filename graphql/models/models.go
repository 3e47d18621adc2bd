// Package models holds the GraphQL wire types. Ints are int32 and IDs
// are graphql.ID to match graphql-go's scalar mapping.
package models

import graphqlgo "github.com/graph-gophers/graphql-go"

type Category struct {
	ID           graphqlgo.ID `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description"`
	Image        *string      `json:"image,omitempty"`
	ProductCount int32        `json:"product_count"`
}

type Subcategory struct {
	ID           graphqlgo.ID `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description"`
	Image        *string      `json:"image,omitempty"`
	Category     *Category    `json:"category,omitempty"`
	ProductCount int32        `json:"product_count"`
}

type ProductImage struct {
	ID        graphqlgo.ID `json:"id"`
	ImageURL  string       `json:"image_url"`
	AltText   string       `json:"alt_text"`
	IsPrimary bool         `json:"is_primary"`
	SortOrder int32        `json:"sort_order"`
}

type ProductReview struct {
	ID           graphqlgo.ID `json:"id"`
	CustomerName string       `json:"customer_name"`
	Rating       int32        `json:"rating"`
	Title        string       `json:"title"`
	Comment      string       `json:"comment"`
	CreatedAt    string       `json:"created_at"`
}

type Product struct {
	ID               graphqlgo.ID     `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	SKU              string           `json:"sku"`
	ShortDescription string           `json:"short_description"`
	Description      string           `json:"description"`
	Price            string           `json:"price"`
	SalePrice        *string          `json:"sale_price,omitempty"`
	StockQuantity    int32            `json:"stock_quantity"`
	Material         string           `json:"material"`
	Finish           string           `json:"finish"`
	Color            string           `json:"color"`
	Features         []string         `json:"features"`
	IsFeatured       bool             `json:"is_featured"`
	IsBestseller     bool             `json:"is_bestseller"`
	AverageRating    float64          `json:"average_rating"`
	ReviewCount      int32            `json:"review_count"`
	Category         *Category        `json:"category,omitempty"`
	Subcategory      *Subcategory     `json:"subcategory,omitempty"`
	Images           []*ProductImage  `json:"images"`
	PrimaryImage     *ProductImage    `json:"primary_image,omitempty"`
	Reviews          []*ProductReview `json:"reviews"`
	RelatedProducts  []*Product       `json:"related_products"`
	CreatedAt        string           `json:"created_at"`
}

type ProductSearchResult struct {
	Items      []*Product `json:"items"`
	TotalCount int32      `json:"total_count"`
	PageInfo   *PageInfo  `json:"page_info"`
}

type PageInfo struct {
	PageSize    int32 `json:"page_size"`
	CurrentPage int32 `json:"current_page"`
	TotalPages  int32 `json:"total_pages"`
}
