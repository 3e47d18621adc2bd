package entity

import "time"

// ProductReview is a customer review. Only approved reviews are served.
type ProductReview struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID    uint      `gorm:"column:product_id;not null;index" json:"-"`
	CustomerName string    `gorm:"column:customer_name;type:varchar(100);not null" json:"customer_name"`
	Email        string    `gorm:"column:email;type:varchar(254);not null" json:"email"`
	Rating       int       `gorm:"column:rating;not null" json:"rating"`
	Title        string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Comment      string    `gorm:"column:comment;type:text;not null" json:"comment"`
	IsApproved   bool      `gorm:"column:is_approved;not null;default:false" json:"is_approved"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductReview) TableName() string {
	return "catalog_product_review"
}
