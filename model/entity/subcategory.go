package entity

import "time"

// Subcategory is a second-level grouping within a Category (Sofas,
// Coffee Tables, ...). Name is unique per parent category.
type Subcategory struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CategoryID  uint      `gorm:"column:category_id;not null;index;uniqueIndex:uniq_subcategory_name" json:"category_id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uniq_subcategory_name" json:"name"`
	Slug        string    `gorm:"column:slug;type:varchar(100);index;not null" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Image       *string   `gorm:"column:image;type:varchar(255)" json:"image"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Embedded parent copy on the wire; not a live link.
	Category Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Products []Product `gorm:"foreignKey:SubcategoryID" json:"-"`
}

func (Subcategory) TableName() string {
	return "catalog_subcategory"
}
