package catalog

import (
	"gorm.io/gorm"

	entity "ashwi.GO/model/entity"
)

// ProductFilters mirrors the faceted filter set of the product list
// endpoints. Nil pointer means the facet is not applied; the booleans
// only narrow when true (matching the query-param contract).
type ProductFilters struct {
	CategorySlug    *string
	SubcategorySlug *string
	Material        *string
	Finish          *string
	Color           *string
	MinPrice        *float64
	MaxPrice        *float64
	OnSale          bool
	InStock         bool
	Featured        bool
	Bestseller      bool
	Search          string
	Ordering        string
}

// orderings whitelists client-supplied ordering values.
var orderings = map[string]string{
	"price":       "price",
	"-price":      "price DESC",
	"name":        "name",
	"-name":       "name DESC",
	"created_at":  "created_at",
	"-created_at": "created_at DESC",
}

const defaultOrdering = "created_at DESC"

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) filtered(f ProductFilters) *gorm.DB {
	q := r.db.Model(&entity.Product{}).Where("catalog_product.is_active = ?", true)

	if f.CategorySlug != nil {
		q = q.Where("category_id IN (?)",
			r.db.Model(&entity.Category{}).Select("id").Where("slug = ?", *f.CategorySlug))
	}
	if f.SubcategorySlug != nil {
		q = q.Where("subcategory_id IN (?)",
			r.db.Model(&entity.Subcategory{}).Select("id").Where("slug = ?", *f.SubcategorySlug))
	}
	if f.Material != nil {
		q = q.Where("material = ?", *f.Material)
	}
	if f.Finish != nil {
		q = q.Where("finish = ?", *f.Finish)
	}
	if f.Color != nil {
		q = q.Where("color = ?", *f.Color)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.OnSale {
		q = q.Where("sale_price IS NOT NULL AND sale_price < price")
	}
	if f.InStock {
		q = q.Where("stock_quantity > 0")
	}
	if f.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if f.Bestseller {
		q = q.Where("is_bestseller = ?", true)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			r.db.Where("catalog_product.name LIKE ?", like).
				Or("catalog_product.description LIKE ?", like).
				Or("short_description LIKE ?", like).
				Or("sku LIKE ?", like).
				Or("category_id IN (?)",
					r.db.Model(&entity.Category{}).Select("id").Where("name LIKE ?", like)).
				Or("subcategory_id IN (?)",
					r.db.Model(&entity.Subcategory{}).Select("id").Where("name LIKE ?", like)),
		)
	}
	return q
}

// List returns one page of filtered products plus the total count.
// Unknown ordering values fall back to newest-first rather than erroring.
func (r *ProductRepository) List(f ProductFilters, page, pageSize int) ([]entity.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := defaultOrdering
	if o, ok := orderings[f.Ordering]; ok {
		order = o
	}

	var products []entity.Product
	err := r.filtered(f).
		Preload("Category").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Preload("Images", imageOrder).
		Preload("Reviews").
		Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, int(total), nil
}

// GetBySlug returns an active product with all relations preloaded.
func (r *ProductRepository) GetBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.
		Preload("Category").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Preload("Images", imageOrder).
		Preload("Reviews").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Related returns up to limit active products sharing the product's
// category and subcategory, excluding the product itself.
func (r *ProductRepository) Related(p *entity.Product, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	var products []entity.Product
	err := r.db.
		Preload("Category").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Preload("Images", imageOrder).
		Preload("Reviews").
		Where("category_id = ? AND subcategory_id = ? AND id <> ? AND is_active = ?",
			p.CategoryID, p.SubcategoryID, p.ID, true).
		Order(defaultOrdering).
		Limit(limit).
		Find(&products).Error
	return products, err
}

// ByIDs returns active products for the given IDs, preserving input
// order (search engines return hits ranked by relevance).
func (r *ProductRepository) ByIDs(ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []entity.Product
	err := r.db.
		Preload("Category").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Preload("Images", imageOrder).
		Preload("Reviews").
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]entity.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// AllActive streams every active product (search indexing, sitemap).
func (r *ProductRepository) AllActive() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.
		Preload("Category").
		Preload("Subcategory").
		Preload("Subcategory.Category").
		Preload("Images", imageOrder).
		Preload("Reviews").
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error
	return products, err
}

func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order, created_at")
}
