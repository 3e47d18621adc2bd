package resolvers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gqlmodels "ashwi.GO/graphql/models"
	"ashwi.GO/model/dto"
	catalogRepo "ashwi.GO/model/repository/catalog"
	"ashwi.GO/service/search"
)

// ProductsArgs matches the products query arguments (defaults in
// schema: pageSize=20, currentPage=1).
type ProductsArgs struct {
	PageSize    int32
	CurrentPage int32
	Category    *string
	Subcategory *string
	Search      *string
	Ordering    *string
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) (*gqlmodels.ProductSearchResult, error) {
	var f catalogRepo.ProductFilters
	f.CategorySlug = args.Category
	f.SubcategorySlug = args.Subcategory
	if args.Search != nil {
		f.Search = *args.Search
	}
	if args.Ordering != nil {
		f.Ordering = *args.Ordering
	}

	page, pageSize := pageArgs(args.CurrentPage, args.PageSize)
	items, total, err := r.products().List(f, page, pageSize)
	if err != nil {
		return nil, err
	}
	return searchResult(items, total, page, pageSize), nil
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	Slug *string
	SKU  *string
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	repo := r.products()

	var slug string
	switch {
	case args.Slug != nil && *args.Slug != "":
		slug = *args.Slug
	case args.SKU != nil && *args.SKU != "":
		s, err := r.slugBySKU(*args.SKU)
		if err != nil {
			return nil, err
		}
		slug = s
	default:
		return nil, fmt.Errorf("product: slug or sku is required")
	}

	p, err := repo.GetBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	out := dto.FromProduct(p, true)

	related, err := repo.Related(p, 4)
	if err != nil {
		return nil, err
	}
	out.RelatedProducts = dto.FromProducts(related)
	return toProduct(&out), nil
}

func (r *QueryResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	repo := r.categories()
	cats, err := repo.ListActive()
	if err != nil {
		return nil, err
	}
	counts, err := repo.ProductCounts()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Category, 0, len(cats))
	for i := range cats {
		d := dto.FromCategory(&cats[i], counts[cats[i].ID])
		out = append(out, toCategory(&d))
	}
	return out, nil
}

// CategoryArgs matches the category query arguments.
type CategoryArgs struct {
	Slug string
}

func (r *QueryResolver) Category(ctx context.Context, args CategoryArgs) (*gqlmodels.Category, error) {
	repo := r.categories()
	cat, err := repo.GetBySlug(args.Slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	count, err := repo.ProductCount(cat.ID)
	if err != nil {
		return nil, err
	}
	d := dto.FromCategory(cat, count)
	return toCategory(&d), nil
}

// SubcategoriesArgs matches the subcategories query arguments.
type SubcategoriesArgs struct {
	Category *string
}

func (r *QueryResolver) Subcategories(ctx context.Context, args SubcategoriesArgs) ([]*gqlmodels.Subcategory, error) {
	categorySlug := ""
	if args.Category != nil {
		categorySlug = *args.Category
	}
	repo := r.subcategories()
	subs, err := repo.ListActive(categorySlug)
	if err != nil {
		return nil, err
	}
	subCounts, err := repo.ProductCounts()
	if err != nil {
		return nil, err
	}
	catCounts, err := r.categories().ProductCounts()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Subcategory, 0, len(subs))
	for i := range subs {
		d := dto.FromSubcategory(&subs[i], subCounts[subs[i].ID], catCounts[subs[i].CategoryID])
		out = append(out, toSubcategory(&d))
	}
	return out, nil
}

// SearchArgs matches the search query arguments.
type SearchArgs struct {
	Query       string
	PageSize    int32
	CurrentPage int32
}

func (r *QueryResolver) Search(ctx context.Context, args SearchArgs) (*gqlmodels.ProductSearchResult, error) {
	page, pageSize := pageArgs(args.CurrentPage, args.PageSize)
	items, total, err := search.GetSearchService().SearchProducts(r.products(), args.Query, page, pageSize)
	if err != nil {
		return nil, err
	}
	return searchResult(items, total, page, pageSize), nil
}

func (r *QueryResolver) slugBySKU(sku string) (string, error) {
	type row struct{ Slug string }
	var rw row
	err := r.db.Table("catalog_product").Select("slug").
		Where("sku = ? AND is_active = ?", sku, true).
		Take(&rw).Error
	if err != nil {
		return "", err
	}
	return rw.Slug, nil
}

func pageArgs(currentPage, pageSize int32) (int, int) {
	page, size := int(currentPage), int(pageSize)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return page, size
}
