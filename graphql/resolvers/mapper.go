package resolvers

import (
	"strconv"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"

	gqlmodels "ashwi.GO/graphql/models"
	"ashwi.GO/model/dto"
	entity "ashwi.GO/model/entity"
)

// The REST layer's dto mapping already handles primary image fallback,
// approved-review aggregation and media URL resolution, so GraphQL
// maps entities through dto rather than duplicating those rules.

func gqlID(id uint) graphqlgo.ID {
	return graphqlgo.ID(strconv.FormatUint(uint64(id), 10))
}

func toCategory(c *dto.Category) *gqlmodels.Category {
	return &gqlmodels.Category{
		ID:           gqlID(c.ID),
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        c.Image,
		ProductCount: int32(c.ProductCount),
	}
}

func toSubcategory(s *dto.Subcategory) *gqlmodels.Subcategory {
	return &gqlmodels.Subcategory{
		ID:           gqlID(s.ID),
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		Image:        s.Image,
		Category:     toCategory(&s.Category),
		ProductCount: int32(s.ProductCount),
	}
}

func toImage(img *dto.ProductImage) *gqlmodels.ProductImage {
	return &gqlmodels.ProductImage{
		ID:        gqlID(img.ID),
		ImageURL:  img.ImageURL,
		AltText:   img.AltText,
		IsPrimary: img.IsPrimary,
		SortOrder: int32(img.Order),
	}
}

func toReview(rv *dto.ProductReview) *gqlmodels.ProductReview {
	return &gqlmodels.ProductReview{
		ID:           gqlID(rv.ID),
		CustomerName: rv.CustomerName,
		Rating:       int32(rv.Rating),
		Title:        rv.Title,
		Comment:      rv.Comment,
		CreatedAt:    rv.CreatedAt.Format(time.RFC3339),
	}
}

func toProduct(p *dto.Product) *gqlmodels.Product {
	images := make([]*gqlmodels.ProductImage, 0, len(p.Images))
	for i := range p.Images {
		images = append(images, toImage(&p.Images[i]))
	}
	var primary *gqlmodels.ProductImage
	if p.PrimaryImage != nil {
		primary = toImage(p.PrimaryImage)
	}
	reviews := make([]*gqlmodels.ProductReview, 0, len(p.Reviews))
	for i := range p.Reviews {
		reviews = append(reviews, toReview(&p.Reviews[i]))
	}
	related := make([]*gqlmodels.Product, 0, len(p.RelatedProducts))
	for i := range p.RelatedProducts {
		related = append(related, toProduct(&p.RelatedProducts[i]))
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}

	return &gqlmodels.Product{
		ID:               gqlID(p.ID),
		Name:             p.Name,
		Slug:             p.Slug,
		SKU:              p.SKU,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Price:            p.Price,
		SalePrice:        p.SalePrice,
		StockQuantity:    int32(p.StockQuantity),
		Material:         p.Material,
		Finish:           p.Finish,
		Color:            p.Color,
		Features:         features,
		IsFeatured:       p.IsFeatured,
		IsBestseller:     p.IsBestseller,
		AverageRating:    p.AverageRating,
		ReviewCount:      int32(p.ReviewCount),
		Category:         toCategory(&p.Category),
		Subcategory:      toSubcategory(&p.Subcategory),
		Images:           images,
		PrimaryImage:     primary,
		Reviews:          reviews,
		RelatedProducts:  related,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
}

func toProducts(items []entity.Product, includeReviews bool) []*gqlmodels.Product {
	out := make([]*gqlmodels.Product, 0, len(items))
	for i := range items {
		d := dto.FromProduct(&items[i], includeReviews)
		out = append(out, toProduct(&d))
	}
	return out
}

func searchResult(items []entity.Product, total, page, pageSize int) *gqlmodels.ProductSearchResult {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &gqlmodels.ProductSearchResult{
		Items:      toProducts(items, false),
		TotalCount: int32(total),
		PageInfo: &gqlmodels.PageInfo{
			PageSize:    int32(pageSize),
			CurrentPage: int32(page),
			TotalPages:  int32(totalPages),
		},
	}
}
