package catalog

import (
	"gorm.io/gorm"

	entity "ashwi.GO/model/entity"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListActive returns active categories ordered by name.
func (r *CategoryRepository) ListActive() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.Where("is_active = ?", true).Order("name").Find(&cats).Error
	return cats, err
}

// GetBySlug returns an active category or gorm.ErrRecordNotFound.
func (r *CategoryRepository) GetBySlug(slug string) (*entity.Category, error) {
	var cat entity.Category
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// ProductCount counts active products in a category.
func (r *CategoryRepository) ProductCount(categoryID uint) (int, error) {
	var n int64
	err := r.db.Model(&entity.Product{}).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Count(&n).Error
	return int(n), err
}

// ProductCounts returns active product counts keyed by category ID in
// one query (avoids N+1 on the category listing).
func (r *CategoryRepository) ProductCounts() (map[uint]int, error) {
	type row struct {
		CategoryID uint
		N          int
	}
	var rows []row
	err := r.db.Model(&entity.Product{}).
		Select("category_id, COUNT(*) AS n").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, rw := range rows {
		counts[rw.CategoryID] = rw.N
	}
	return counts, nil
}
