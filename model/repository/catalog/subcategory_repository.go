package catalog

import (
	"gorm.io/gorm"

	entity "ashwi.GO/model/entity"
)

type SubcategoryRepository struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

// ListActive returns active subcategories with their parent preloaded.
// categorySlug narrows to one parent category when non-empty.
func (r *SubcategoryRepository) ListActive(categorySlug string) ([]entity.Subcategory, error) {
	q := r.db.Preload("Category").
		Where("is_active = ?", true).
		Order("category_id, name")
	if categorySlug != "" {
		q = q.Where("category_id IN (?)",
			r.db.Model(&entity.Category{}).Select("id").Where("slug = ?", categorySlug))
	}
	var subs []entity.Subcategory
	err := q.Find(&subs).Error
	return subs, err
}

// GetBySlug returns an active subcategory with its parent preloaded.
func (r *SubcategoryRepository) GetBySlug(slug string) (*entity.Subcategory, error) {
	var sub entity.Subcategory
	err := r.db.Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ProductCount counts active products in a subcategory.
func (r *SubcategoryRepository) ProductCount(subcategoryID uint) (int, error) {
	var n int64
	err := r.db.Model(&entity.Product{}).
		Where("subcategory_id = ? AND is_active = ?", subcategoryID, true).
		Count(&n).Error
	return int(n), err
}

// ProductCounts returns active product counts keyed by subcategory ID.
func (r *SubcategoryRepository) ProductCounts() (map[uint]int, error) {
	type row struct {
		SubcategoryID uint
		N             int
	}
	var rows []row
	err := r.db.Model(&entity.Product{}).
		Select("subcategory_id, COUNT(*) AS n").
		Where("is_active = ?", true).
		Group("subcategory_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, rw := range rows {
		counts[rw.SubcategoryID] = rw.N
	}
	return counts, nil
}
