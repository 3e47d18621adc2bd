package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ashwi.GO/model/dto"
	entity "ashwi.GO/model/entity"
)

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

func strPtr(s string) *string { return &s }

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	living := entity.Category{Name: "Living Room", IsActive: true}
	bedroom := entity.Category{Name: "Bedroom", IsActive: true}
	hidden := entity.Category{Name: "Archive", IsActive: false}
	for _, c := range []*entity.Category{&living, &bedroom, &hidden} {
		if err := db.Create(c).Error; err != nil {
			t.Fatal(err)
		}
	}

	sofas := entity.Subcategory{Name: "Sofas", CategoryID: living.ID, IsActive: true}
	beds := entity.Subcategory{Name: "Beds", CategoryID: bedroom.ID, IsActive: true}
	for _, s := range []*entity.Subcategory{&sofas, &beds} {
		if err := db.Create(s).Error; err != nil {
			t.Fatal(err)
		}
	}

	products := []entity.Product{
		{
			Name: "Oslo Sofa", CategoryID: living.ID, SubcategoryID: sofas.ID,
			Description: "Comfortable", Price: "1299.00", SalePrice: strPtr("999.00"),
			StockQuantity: 5, Material: "Fabric", IsActive: true, IsFeatured: true,
		},
		{
			Name: "Harbor Sofa", CategoryID: living.ID, SubcategoryID: sofas.ID,
			Description: "Solid", Price: "349.00",
			StockQuantity: 0, Material: "Leather", IsActive: true, IsBestseller: true,
		},
		{
			Name: "Aria Bed", CategoryID: bedroom.ID, SubcategoryID: beds.ID,
			Description: "Restful", Price: "899.00",
			StockQuantity: 8, Material: "Pine", IsActive: true,
		},
		{
			Name: "Retired Couch", CategoryID: living.ID, SubcategoryID: sofas.ID,
			Description: "Old", Price: "100.00", StockQuantity: 1, IsActive: false,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
}

func testServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	seedCatalog(t, db)
	e := echo.New()
	g := e.Group("/api")
	RegisterCategoryRoutes(g, db)
	RegisterSubcategoryRoutes(g, db)
	RegisterProductRoutes(g, db)
	RegisterReviewRoutes(g, db)
	return e, db
}

func doGET(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) dto.ProductListResponse {
	t.Helper()
	var resp dto.ProductListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestCategories_ListActiveWithCounts(t *testing.T) {
	e, _ := testServer(t)
	rec := doGET(t, e, "/api/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp dto.CategoryListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2 (inactive excluded)", resp.Count)
	}
	for _, c := range resp.Results {
		if c.Slug == "living-room" && c.ProductCount != 2 {
			t.Errorf("living-room product_count = %d, want 2 active", c.ProductCount)
		}
	}
}

func TestCategory_DetailAnd404(t *testing.T) {
	e, _ := testServer(t)
	rec := doGET(t, e, "/api/categories/living-room")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var cat dto.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &cat); err != nil {
		t.Fatal(err)
	}
	if cat.Name != "Living Room" || cat.ProductCount != 2 {
		t.Errorf("category = %+v", cat)
	}

	if rec := doGET(t, e, "/api/categories/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("missing slug status = %d, want 404", rec.Code)
	}
	if rec := doGET(t, e, "/api/categories/archive"); rec.Code != http.StatusNotFound {
		t.Errorf("inactive category status = %d, want 404", rec.Code)
	}
}

func TestCategoryProducts_Nested(t *testing.T) {
	e, _ := testServer(t)
	resp := decodeList(t, doGET(t, e, "/api/categories/living-room/products"))
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	for _, p := range resp.Results {
		if p.Category.Slug != "living-room" {
			t.Errorf("product %s in category %s", p.Slug, p.Category.Slug)
		}
	}
}

func TestProducts_Filters(t *testing.T) {
	e, _ := testServer(t)

	cases := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?on_sale=true", 1},
		{"?in_stock=true", 2},
		{"?is_featured=true", 1},
		{"?is_bestseller=true", 1},
		{"?material=Pine", 1},
		{"?min_price=500", 2},
		{"?max_price=500", 1},
		{"?min_price=500&max_price=1000", 1},
		{"?category=bedroom", 1},
		{"?subcategory=sofas", 2},
		{"?search=sofa", 2},
		{"?min_price=abc", 3}, // unparsable numeric ignored
	}
	for _, tc := range cases {
		resp := decodeList(t, doGET(t, e, "/api/products"+tc.query))
		if resp.Count != tc.want {
			t.Errorf("%q: Count = %d, want %d", tc.query, resp.Count, tc.want)
		}
	}
}

func TestProducts_OrderingWhitelist(t *testing.T) {
	e, _ := testServer(t)

	resp := decodeList(t, doGET(t, e, "/api/products?ordering=price"))
	if len(resp.Results) != 3 || resp.Results[0].Price != "349.00" {
		t.Errorf("price ascending: first = %+v", resp.Results[0].Price)
	}

	resp = decodeList(t, doGET(t, e, "/api/products?ordering=-price"))
	if resp.Results[0].Price != "1299.00" {
		t.Errorf("price descending: first = %v", resp.Results[0].Price)
	}

	// Unknown ordering falls back to newest-first instead of erroring.
	rec := doGET(t, e, "/api/products?ordering=stock_quantity")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown ordering status = %d", rec.Code)
	}
}

func TestProducts_Pagination(t *testing.T) {
	e, _ := testServer(t)
	resp := decodeList(t, doGET(t, e, "/api/products?page_size=2"))
	if resp.Count != 3 || len(resp.Results) != 2 {
		t.Fatalf("count %d page len %d", resp.Count, len(resp.Results))
	}
	if resp.Next == nil {
		t.Fatal("next must be set on page 1 of 2")
	}
	if !strings.Contains(*resp.Next, "page=2") || !strings.Contains(*resp.Next, "page_size=2") {
		t.Errorf("next = %q, must preserve query string", *resp.Next)
	}
	if resp.Previous != nil {
		t.Error("previous must be null on page 1")
	}

	resp = decodeList(t, doGET(t, e, "/api/products?page_size=2&page=2"))
	if len(resp.Results) != 1 || resp.Next != nil || resp.Previous == nil {
		t.Errorf("page 2: len %d next %v prev %v", len(resp.Results), resp.Next, resp.Previous)
	}
	// Page 1 is canonical: previous drops the page param but keeps the rest.
	if strings.Contains(*resp.Previous, "page=2") || !strings.Contains(*resp.Previous, "page_size=2") {
		t.Errorf("previous = %q", *resp.Previous)
	}
}

func TestProduct_DetailWithRelated(t *testing.T) {
	e, _ := testServer(t)
	rec := doGET(t, e, "/api/products/oslo-sofa")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p dto.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.SKU == "" || !strings.HasPrefix(p.SKU, "ASHWI-") {
		t.Errorf("SKU = %q", p.SKU)
	}
	if len(p.RelatedProducts) != 1 || p.RelatedProducts[0].Slug != "harbor-sofa" {
		t.Errorf("related = %+v", p.RelatedProducts)
	}

	if rec := doGET(t, e, "/api/products/retired-couch"); rec.Code != http.StatusNotFound {
		t.Errorf("inactive product status = %d, want 404", rec.Code)
	}
}

func TestProducts_CollectionEndpoints(t *testing.T) {
	e, _ := testServer(t)
	if resp := decodeList(t, doGET(t, e, "/api/products/featured")); resp.Count != 1 {
		t.Errorf("featured Count = %d", resp.Count)
	}
	if resp := decodeList(t, doGET(t, e, "/api/products/bestsellers")); resp.Count != 1 {
		t.Errorf("bestsellers Count = %d", resp.Count)
	}
	if resp := decodeList(t, doGET(t, e, "/api/products/on_sale")); resp.Count != 1 {
		t.Errorf("on_sale Count = %d", resp.Count)
	}
}

func TestProducts_SearchEndpoint(t *testing.T) {
	e, _ := testServer(t)
	resp := decodeList(t, doGET(t, e, "/api/products/search?q=sofa"))
	if resp.Count != 2 {
		t.Errorf("search Count = %d, want 2", resp.Count)
	}
	if rec := doGET(t, e, "/api/products/search"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing q status = %d, want 400", rec.Code)
	}
}

func TestReviews_PostStartsUnapproved(t *testing.T) {
	e, db := testServer(t)

	body := `{"customer_name":"Dana","email":"dana@example.com","rating":5,"title":"Love it","comment":"Very comfy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products/oslo-sofa/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var created dto.ProductReview
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.IsApproved {
		t.Error("new reviews must await moderation")
	}

	// Unapproved reviews stay out of the listing.
	listRec := doGET(t, e, "/api/products/oslo-sofa/reviews")
	var list struct {
		Count   int                 `json:"count"`
		Results []dto.ProductReview `json:"results"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 0 {
		t.Errorf("unapproved review visible: %+v", list.Results)
	}

	// Approve and list again.
	if err := db.Model(&entity.ProductReview{}).Where("id = ?", created.ID).
		Update("is_approved", true).Error; err != nil {
		t.Fatal(err)
	}
	listRec = doGET(t, e, "/api/products/oslo-sofa/reviews")
	if err := json.Unmarshal(listRec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 1 || list.Results[0].CustomerName != "Dana" {
		t.Errorf("approved review missing: %+v", list)
	}
}

func TestReviews_Validation(t *testing.T) {
	e, _ := testServer(t)

	for _, body := range []string{
		`{"customer_name":"","email":"a@b.c","rating":4}`,
		`{"customer_name":"A","email":"a@b.c","rating":0}`,
		`{"customer_name":"A","email":"a@b.c","rating":6}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/products/oslo-sofa/reviews", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products/missing/reviews",
		strings.NewReader(`{"customer_name":"A","email":"a@b.c","rating":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing product status = %d, want 404", rec.Code)
	}
}
