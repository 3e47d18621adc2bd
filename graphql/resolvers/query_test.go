package resolvers

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "ashwi.GO/model/entity"
)

func testResolver(t *testing.T) *QueryResolver {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Category{}, &entity.Subcategory{}, &entity.Product{},
		&entity.ProductImage{}, &entity.ProductReview{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cat := entity.Category{Name: "Office", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	sub := entity.Subcategory{Name: "Desks", CategoryID: cat.ID, IsActive: true}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatal(err)
	}
	products := []entity.Product{
		{Name: "Atlas Desk", CategoryID: cat.ID, SubcategoryID: sub.ID, Description: "standing desk", Price: "649.00", StockQuantity: 4, IsActive: true},
		{Name: "Writer Desk", CategoryID: cat.ID, SubcategoryID: sub.ID, Description: "writing desk", Price: "249.00", StockQuantity: 9, IsActive: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
	return NewQueryResolver(db)
}

func TestQuery_Products(t *testing.T) {
	r := testResolver(t)
	res, err := r.Products(context.Background(), ProductsArgs{PageSize: 20, CurrentPage: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalCount != 2 || len(res.Items) != 2 {
		t.Errorf("total %d items %d", res.TotalCount, len(res.Items))
	}
	if res.PageInfo.TotalPages != 1 {
		t.Errorf("TotalPages = %d", res.PageInfo.TotalPages)
	}
}

func TestQuery_ProductBySlugAndSKU(t *testing.T) {
	r := testResolver(t)
	ctx := context.Background()

	slug := "atlas-desk"
	p, err := r.Product(ctx, ProductArgs{Slug: &slug})
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Name != "Atlas Desk" {
		t.Fatalf("product = %+v", p)
	}
	if len(p.RelatedProducts) != 1 {
		t.Errorf("related = %d, want 1", len(p.RelatedProducts))
	}

	bySKU, err := r.Product(ctx, ProductArgs{SKU: &p.SKU})
	if err != nil {
		t.Fatal(err)
	}
	if bySKU == nil || bySKU.Slug != "atlas-desk" {
		t.Errorf("by sku = %+v", bySKU)
	}

	missing := "missing"
	got, err := r.Product(ctx, ProductArgs{Slug: &missing})
	if err != nil || got != nil {
		t.Errorf("missing product: %v %v", got, err)
	}

	if _, err := r.Product(ctx, ProductArgs{}); err == nil {
		t.Error("no identifier must error")
	}
}

func TestQuery_CategoriesAndSubcategories(t *testing.T) {
	r := testResolver(t)
	ctx := context.Background()

	cats, err := r.Categories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 || cats[0].ProductCount != 2 {
		t.Errorf("categories = %+v", cats)
	}

	office := "office"
	subs, err := r.Subcategories(ctx, SubcategoriesArgs{Category: &office})
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].Slug != "desks" {
		t.Errorf("subcategories = %+v", subs)
	}

	cat, err := r.Category(ctx, CategoryArgs{Slug: "office"})
	if err != nil || cat == nil || cat.Name != "Office" {
		t.Errorf("category = %+v err %v", cat, err)
	}
	none, err := r.Category(ctx, CategoryArgs{Slug: "none"})
	if err != nil || none != nil {
		t.Errorf("missing category: %v %v", none, err)
	}
}

func TestQuery_SearchFallsBackToSQL(t *testing.T) {
	r := testResolver(t)
	res, err := r.Search(context.Background(), SearchArgs{Query: "standing", PageSize: 20, CurrentPage: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalCount != 1 || res.Items[0].Slug != "atlas-desk" {
		t.Errorf("search = %+v", res)
	}
}
