// Package catalog seeds the database with the starter catalog. Runs
// are idempotent: rows are matched by slug and only created when
// missing, so re-seeding a live database is safe.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apiCatalog "ashwi.GO/api/catalog"
	entity "ashwi.GO/model/entity"
)

// SeedCategory is the fixture shape for one category and its tree.
type SeedCategory struct {
	Name          string            `mapstructure:"name"`
	Description   string            `mapstructure:"description"`
	Subcategories []SeedSubcategory `mapstructure:"subcategories"`
}

type SeedSubcategory struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// SeedProduct is the fixture shape for one product.
type SeedProduct struct {
	Name             string                 `mapstructure:"name"`
	Category         string                 `mapstructure:"category"`
	Subcategory      string                 `mapstructure:"subcategory"`
	ShortDescription string                 `mapstructure:"short_description"`
	Description      string                 `mapstructure:"description"`
	Price            string                 `mapstructure:"price"`
	SalePrice        string                 `mapstructure:"sale_price"`
	StockQuantity    uint                   `mapstructure:"stock_quantity"`
	Material         string                 `mapstructure:"material"`
	Finish           string                 `mapstructure:"finish"`
	Color            string                 `mapstructure:"color"`
	Weight           float64                `mapstructure:"weight"`
	Features         []string               `mapstructure:"features"`
	Specifications   map[string]interface{} `mapstructure:"specifications"`
	IsFeatured       bool                   `mapstructure:"is_featured"`
	IsBestseller     bool                   `mapstructure:"is_bestseller"`
}

type fixture struct {
	Categories []SeedCategory `mapstructure:"categories"`
	Products   []SeedProduct  `mapstructure:"products"`
}

// SeedResult summarizes one seed run.
type SeedResult struct {
	CategoriesCreated    int
	SubcategoriesCreated int
	ProductsCreated      int
	Skipped              int
}

// Seed loads the fixture (the built-in catalog, or the JSON file named
// by CATALOG_FIXTURE_FILE) and creates any missing rows. The cached
// category listing is invalidated afterwards.
func Seed(db *gorm.DB) (*SeedResult, error) {
	fix, err := loadFixture()
	if err != nil {
		return nil, err
	}

	res := &SeedResult{}
	subIDs := map[string]uint{}

	for _, sc := range fix.Categories {
		cat := entity.Category{Name: sc.Name, Description: sc.Description, IsActive: true}
		created, err := firstOrCreate(db, &cat, "name = ?", sc.Name)
		if err != nil {
			return res, fmt.Errorf("seed category %q: %w", sc.Name, err)
		}
		if created {
			res.CategoriesCreated++
		}
		for _, ss := range sc.Subcategories {
			sub := entity.Subcategory{
				Name:        ss.Name,
				Description: ss.Description,
				CategoryID:  cat.ID,
				IsActive:    true,
			}
			created, err := firstOrCreate(db, &sub, "name = ? AND category_id = ?", ss.Name, cat.ID)
			if err != nil {
				return res, fmt.Errorf("seed subcategory %q: %w", ss.Name, err)
			}
			if created {
				res.SubcategoriesCreated++
			}
			subIDs[sc.Name+"/"+ss.Name] = sub.ID
		}
	}

	for _, sp := range fix.Products {
		subID, ok := subIDs[sp.Category+"/"+sp.Subcategory]
		if !ok {
			// Fixture may reference pre-existing rows not seeded this run.
			var sub entity.Subcategory
			err := db.Joins("Category").
				Where("catalog_subcategory.name = ? AND Category.name = ?", sp.Subcategory, sp.Category).
				First(&sub).Error
			if err != nil {
				return res, fmt.Errorf("seed product %q: unknown subcategory %s/%s", sp.Name, sp.Category, sp.Subcategory)
			}
			subID = sub.ID
			subIDs[sp.Category+"/"+sp.Subcategory] = sub.ID
		}
		var sub entity.Subcategory
		if err := db.First(&sub, subID).Error; err != nil {
			return res, err
		}

		p := entity.Product{
			Name:             sp.Name,
			CategoryID:       sub.CategoryID,
			SubcategoryID:    sub.ID,
			ShortDescription: sp.ShortDescription,
			Description:      sp.Description,
			Price:            sp.Price,
			StockQuantity:    sp.StockQuantity,
			Material:         sp.Material,
			Finish:           sp.Finish,
			Color:            sp.Color,
			IsActive:         true,
			IsFeatured:       sp.IsFeatured,
			IsBestseller:     sp.IsBestseller,
		}
		if sp.SalePrice != "" {
			sale := sp.SalePrice
			p.SalePrice = &sale
		}
		if sp.Weight > 0 {
			w := sp.Weight
			p.Weight = &w
		}
		if len(sp.Features) > 0 {
			raw, _ := json.Marshal(sp.Features)
			p.Features = datatypes.JSON(raw)
		}
		if len(sp.Specifications) > 0 {
			raw, _ := json.Marshal(sp.Specifications)
			p.Specifications = datatypes.JSON(raw)
		}

		created, err := firstOrCreate(db, &p, "name = ?", sp.Name)
		if err != nil {
			return res, fmt.Errorf("seed product %q: %w", sp.Name, err)
		}
		if created {
			res.ProductsCreated++
		} else {
			res.Skipped++
		}
	}

	apiCatalog.InvalidateCategoryCache()
	return res, nil
}

// firstOrCreate creates dest unless a row matches the condition.
// Returns whether a new row was created.
func firstOrCreate(db *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	tx := db.Where(query, args...).FirstOrCreate(dest)
	return tx.RowsAffected > 0, tx.Error
}

// loadFixture decodes the catalog fixture through mapstructure so both
// the built-in map and external JSON go through the same typed path.
func loadFixture() (*fixture, error) {
	raw := defaultFixture()
	if path := os.Getenv("CATALOG_FIXTURE_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fixture file %s: %w", path, err)
		}
		var external map[string]interface{}
		if err := json.Unmarshal(data, &external); err != nil {
			return nil, fmt.Errorf("fixture file %s: %w", path, err)
		}
		raw = external
	}

	fix := &fixture{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           fix,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("fixture decode: %w", err)
	}
	return fix, nil
}
