package dto

import (
	"encoding/json"
	"math"
	"strings"

	"ashwi.GO/config"
	entity "ashwi.GO/model/entity"
)

// FromCategory maps a category entity plus its active product count.
func FromCategory(c *entity.Category, productCount int) Category {
	return Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        imageURLPtr(c.Image),
		IsActive:     c.IsActive,
		ProductCount: productCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromSubcategory maps a subcategory with an embedded parent copy.
func FromSubcategory(s *entity.Subcategory, productCount, categoryCount int) Subcategory {
	return Subcategory{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		Image:        imageURLPtr(s.Image),
		IsActive:     s.IsActive,
		Category:     FromCategory(&s.Category, categoryCount),
		CategoryID:   s.CategoryID,
		ProductCount: productCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromImage(img *entity.ProductImage) ProductImage {
	return ProductImage{
		ID:        img.ID,
		Image:     img.Image,
		ImageURL:  AbsoluteMediaURL(img.Image),
		AltText:   img.AltText,
		IsPrimary: img.IsPrimary,
		Order:     img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
}

func FromReview(r *entity.ProductReview) ProductReview {
	return ProductReview{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Rating:       r.Rating,
		Title:        r.Title,
		Comment:      r.Comment,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt,
	}
}

// FromProduct maps a product entity with preloaded relations.
// includeReviews controls whether the approved review list is carried
// on the wire (detail view); ratings aggregate over approved reviews
// either way.
func FromProduct(p *entity.Product, includeReviews bool) Product {
	images := make([]ProductImage, 0, len(p.Images))
	var primary *ProductImage
	for i := range p.Images {
		img := FromImage(&p.Images[i])
		images = append(images, img)
		if p.Images[i].IsPrimary && primary == nil {
			primary = &images[len(images)-1]
		}
	}
	if primary == nil && len(images) > 0 {
		primary = &images[0]
	}

	var reviews []ProductReview
	total, count := 0, 0
	for i := range p.Reviews {
		if !p.Reviews[i].IsApproved {
			continue
		}
		total += p.Reviews[i].Rating
		count++
		if includeReviews {
			reviews = append(reviews, FromReview(&p.Reviews[i]))
		}
	}
	avg := 0.0
	if count > 0 {
		avg = math.Round(float64(total)/float64(count)*10) / 10
	}

	var features []string
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}
	specs := map[string]interface{}{}
	if len(p.Specifications) > 0 {
		_ = json.Unmarshal(p.Specifications, &specs)
	}

	return Product{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		SKU:               p.SKU,
		Category:          FromCategory(&p.Category, 0),
		Subcategory:       FromSubcategory(&p.Subcategory, 0, 0),
		CategoryID:        p.CategoryID,
		SubcategoryID:     p.SubcategoryID,
		ShortDescription:  p.ShortDescription,
		Description:       p.Description,
		Price:             p.Price,
		SalePrice:         p.SalePrice,
		CostPrice:         p.CostPrice,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		Material:          p.Material,
		Finish:            p.Finish,
		DimensionsLength:  p.DimensionsLength,
		DimensionsWidth:   p.DimensionsWidth,
		DimensionsHeight:  p.DimensionsHeight,
		Weight:            p.Weight,
		Color:             p.Color,
		Features:          features,
		Specifications:    specs,
		IsActive:          p.IsActive,
		IsFeatured:        p.IsFeatured,
		IsBestseller:      p.IsBestseller,
		MetaTitle:         p.MetaTitle,
		MetaDescription:   p.MetaDescription,
		Images:            images,
		PrimaryImage:      primary,
		Reviews:           reviews,
		AverageRating:     avg,
		ReviewCount:       count,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// FromProducts maps a result page (list serializer: no review bodies).
func FromProducts(items []entity.Product) []Product {
	out := make([]Product, 0, len(items))
	for i := range items {
		out = append(out, FromProduct(&items[i], false))
	}
	return out
}

// AbsoluteMediaURL resolves a stored image path against the media base
// URL; absolute URLs pass through.
func AbsoluteMediaURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	config.LoadAppConfig()
	return strings.TrimSuffix(config.AppConfig.MediaURL, "/") + "/" + strings.TrimPrefix(image, "/")
}

func imageURLPtr(image *string) *string {
	if image == nil {
		return nil
	}
	u := AbsoluteMediaURL(*image)
	return &u
}
