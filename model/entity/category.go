package entity

import "time"

// Category represents a main furniture category (Living Room, Bedroom, ...).
type Category struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"column:slug;type:varchar(100);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Image       *string   `gorm:"column:image;type:varchar(255)" json:"image"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"-"`
	Products      []Product     `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "catalog_category"
}
