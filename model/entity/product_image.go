package entity

import "time"

// ProductImage is one gallery entry; at most one per product is primary.
type ProductImage struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"column:product_id;not null;index" json:"-"`
	Image     string    `gorm:"column:image;type:varchar(255);not null" json:"image"`
	AltText   string    `gorm:"column:alt_text;type:varchar(200)" json:"alt_text"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	SortOrder uint      `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductImage) TableName() string {
	return "catalog_product_image"
}
