package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a furniture product with full specifications. Monetary
// values are decimal strings end to end to avoid float currency error.
type Product struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Slug          string `gorm:"column:slug;type:varchar(200);uniqueIndex;not null" json:"slug"`
	SKU           string `gorm:"column:sku;type:varchar(50);uniqueIndex;not null" json:"sku"`
	CategoryID    uint   `gorm:"column:category_id;not null;index" json:"category_id"`
	SubcategoryID uint   `gorm:"column:subcategory_id;not null;index" json:"subcategory_id"`

	ShortDescription string `gorm:"column:short_description;type:varchar(300)" json:"short_description"`
	Description      string `gorm:"column:description;type:text;not null" json:"description"`

	Price     string  `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	SalePrice *string `gorm:"column:sale_price;type:decimal(10,2)" json:"sale_price"`
	CostPrice *string `gorm:"column:cost_price;type:decimal(10,2)" json:"cost_price"`

	StockQuantity     uint `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	LowStockThreshold uint `gorm:"column:low_stock_threshold;not null;default:5" json:"low_stock_threshold"`

	Material         string   `gorm:"column:material;type:varchar(20)" json:"material"`
	Finish           string   `gorm:"column:finish;type:varchar(20)" json:"finish"`
	DimensionsLength *float64 `gorm:"column:dimensions_length;type:decimal(8,2)" json:"dimensions_length"`
	DimensionsWidth  *float64 `gorm:"column:dimensions_width;type:decimal(8,2)" json:"dimensions_width"`
	DimensionsHeight *float64 `gorm:"column:dimensions_height;type:decimal(8,2)" json:"dimensions_height"`
	Weight           *float64 `gorm:"column:weight;type:decimal(8,2)" json:"weight"`
	Color            string   `gorm:"column:color;type:varchar(50)" json:"color"`

	Features       datatypes.JSON `gorm:"column:features" json:"features"`
	Specifications datatypes.JSON `gorm:"column:specifications" json:"specifications"`

	IsActive     bool `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsFeatured   bool `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsBestseller bool `gorm:"column:is_bestseller;not null;default:false" json:"is_bestseller"`

	MetaTitle       string `gorm:"column:meta_title;type:varchar(60)" json:"meta_title"`
	MetaDescription string `gorm:"column:meta_description;type:varchar(160)" json:"meta_description"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	Subcategory Subcategory     `gorm:"foreignKey:SubcategoryID" json:"subcategory"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID" json:"images"`
	Reviews     []ProductReview `gorm:"foreignKey:ProductID" json:"reviews"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// IsOnSale reports whether a valid sale price is set (must undercut price).
func (p *Product) IsOnSale() bool {
	return p.SalePrice != nil && decimalLess(*p.SalePrice, p.Price)
}

// CurrentPrice returns sale_price when on sale, else price.
func (p *Product) CurrentPrice() string {
	if p.IsOnSale() {
		return *p.SalePrice
	}
	return p.Price
}

// DiscountPercentage returns the integer percent off while on sale, else 0.
func (p *Product) DiscountPercentage() int {
	if !p.IsOnSale() {
		return 0
	}
	price := parseDecimal(p.Price)
	sale := parseDecimal(*p.SalePrice)
	if price <= 0 {
		return 0
	}
	return int((price - sale) / price * 100)
}

func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity == 0
}
