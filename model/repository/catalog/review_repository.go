package catalog

import (
	"fmt"

	"gorm.io/gorm"

	entity "ashwi.GO/model/entity"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ApprovedByProductSlug returns approved reviews for a product, newest first.
func (r *ReviewRepository) ApprovedByProductSlug(slug string) ([]entity.ProductReview, error) {
	var reviews []entity.ProductReview
	err := r.db.
		Where("is_approved = ?", true).
		Where("product_id IN (?)",
			r.db.Model(&entity.Product{}).Select("id").Where("slug = ? AND is_active = ?", slug, true)).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Create attaches a new review to the product identified by slug.
// Reviews start unapproved regardless of input.
func (r *ReviewRepository) Create(slug string, review *entity.ProductReview) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	var p entity.Product
	if err := r.db.Select("id").Where("slug = ? AND is_active = ?", slug, true).First(&p).Error; err != nil {
		return err
	}
	review.ProductID = p.ID
	review.IsApproved = false
	return r.db.Create(review).Error
}
