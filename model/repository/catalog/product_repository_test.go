package catalog

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "ashwi.GO/model/entity"
)

func strPtr(s string) *string { return &s }

func testDB(t *testing.T) *gorm.DB {
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
	return db
}

func seed(t *testing.T, db *gorm.DB) (entity.Category, entity.Subcategory) {
	t.Helper()
	cat := entity.Category{Name: "Living Room", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	sub := entity.Subcategory{Name: "Sofas", CategoryID: cat.ID, IsActive: true}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatal(err)
	}
	products := []entity.Product{
		{Name: "Cheap", CategoryID: cat.ID, SubcategoryID: sub.ID, Description: "d", Price: "100.00", StockQuantity: 1, IsActive: true},
		{Name: "Mid", CategoryID: cat.ID, SubcategoryID: sub.ID, Description: "d", Price: "500.00", SalePrice: strPtr("450.00"), StockQuantity: 0, IsActive: true},
		{Name: "Pricey", CategoryID: cat.ID, SubcategoryID: sub.ID, Description: "d", Price: "900.00", StockQuantity: 3, IsActive: true},
		{Name: "Gone", CategoryID: cat.ID, SubcategoryID: sub.ID, Description: "d", Price: "50.00", StockQuantity: 1, IsActive: false},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
	return cat, sub
}

func TestList_ExcludesInactive(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewProductRepository(db)

	items, total, err := repo.List(ProductFilters{}, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(items) != 3 {
		t.Errorf("total %d len %d, want 3", total, len(items))
	}
}

func TestList_OrderingWhitelistFallback(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewProductRepository(db)

	items, _, err := repo.List(ProductFilters{Ordering: "price"}, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Name != "Cheap" || items[2].Name != "Pricey" {
		t.Errorf("ascending order = %s..%s", items[0].Name, items[2].Name)
	}

	// Non-whitelisted ordering must not reach SQL.
	if _, _, err := repo.List(ProductFilters{Ordering: "sku; DROP TABLE catalog_product"}, 1, 20); err != nil {
		t.Fatalf("fallback ordering errored: %v", err)
	}
	var n int64
	if err := db.Model(&entity.Product{}).Count(&n).Error; err != nil || n != 4 {
		t.Fatalf("table damaged: n=%d err=%v", n, err)
	}
}

func TestList_PriceAndStockFilters(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewProductRepository(db)

	min, max := 200.0, 800.0
	_, total, err := repo.List(ProductFilters{MinPrice: &min, MaxPrice: &max}, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("price range total = %d, want 1", total)
	}

	_, total, err = repo.List(ProductFilters{InStock: true}, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Errorf("in stock total = %d, want 2", total)
	}

	_, total, err = repo.List(ProductFilters{OnSale: true}, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("on sale total = %d, want 1", total)
	}
}

func TestGetBySlug_InactiveHidden(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewProductRepository(db)

	p, err := repo.GetBySlug("cheap")
	if err != nil {
		t.Fatal(err)
	}
	if p.Category.Name != "Living Room" || p.Subcategory.Name != "Sofas" {
		t.Errorf("relations not preloaded: %+v", p)
	}

	if _, err := repo.GetBySlug("gone"); err != gorm.ErrRecordNotFound {
		t.Errorf("inactive err = %v, want ErrRecordNotFound", err)
	}
}

func TestByIDs_PreservesOrder(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewProductRepository(db)

	all, err := repo.AllActive()
	if err != nil {
		t.Fatal(err)
	}
	ids := []uint{all[2].ID, all[0].ID}
	got, err := repo.ByIDs(ids)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != ids[0] || got[1].ID != ids[1] {
		t.Errorf("order not preserved: %v", got)
	}

	if got, err := repo.ByIDs(nil); err != nil || got != nil {
		t.Errorf("empty input: %v %v", got, err)
	}
}

func TestRelated_ExcludesSelf(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	repo := NewProductRepository(db)

	p, err := repo.GetBySlug("cheap")
	if err != nil {
		t.Fatal(err)
	}
	related, err := repo.Related(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(related) != 2 {
		t.Fatalf("related = %d, want 2 active siblings", len(related))
	}
	for _, r := range related {
		if r.ID == p.ID {
			t.Error("related must exclude the product itself")
		}
	}
}

func TestReviewRepository_CreateForcesModeration(t *testing.T) {
	db := testDB(t)
	seed(t, db)
	reviews := NewReviewRepository(db)

	r := entity.ProductReview{CustomerName: "Dana", Email: "d@example.com", Rating: 4, IsApproved: true}
	if err := reviews.Create("cheap", &r); err != nil {
		t.Fatal(err)
	}
	if r.IsApproved {
		t.Error("Create must reset approval")
	}

	bad := entity.ProductReview{CustomerName: "X", Email: "x@example.com", Rating: 0}
	if err := reviews.Create("cheap", &bad); err == nil {
		t.Error("rating 0 must be rejected")
	}
	if err := reviews.Create("missing", &entity.ProductReview{CustomerName: "X", Email: "x@example.com", Rating: 3}); err == nil {
		t.Error("unknown product must error")
	}
}
