package seo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "ashwi.GO/model/entity"
)

func testServer(t *testing.T) *echo.Echo {
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

	cat := entity.Category{Name: "Living Room", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	sub := entity.Subcategory{Name: "Sofas", CategoryID: cat.ID, IsActive: true}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatal(err)
	}
	p := entity.Product{
		Name: "Oslo Sofa", CategoryID: cat.ID, SubcategoryID: sub.ID,
		Description: "Comfortable", Price: "1299.00", StockQuantity: 5, IsActive: true,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	RegisterSeoRoutes(e.Group("/api"), db)
	return e
}

func doGET(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebsiteEndpoint_ServesJSONLD(t *testing.T) {
	e := testServer(t)
	rec := doGET(t, e, "/api/seo/website")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/ld+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["@type"] != "WebSite" {
		t.Errorf("@type = %v", doc["@type"])
	}
}

func TestProductEndpoint_GraphWithBreadcrumb(t *testing.T) {
	e := testServer(t)
	rec := doGET(t, e, "/api/seo/products/oslo-sofa")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var graph []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &graph); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(graph) != 2 {
		t.Fatalf("graph nodes = %d, want product + breadcrumb", len(graph))
	}
	if graph[0]["@type"] != "Product" || graph[1]["@type"] != "BreadcrumbList" {
		t.Errorf("types = %v, %v", graph[0]["@type"], graph[1]["@type"])
	}
	trail := graph[1]["itemListElement"].([]interface{})
	if len(trail) != 3 {
		t.Errorf("breadcrumb trail = %d items, want 3", len(trail))
	}

	if rec := doGET(t, e, "/api/seo/products/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d", rec.Code)
	}
}

func TestCategoryEndpoint_CollectionPage(t *testing.T) {
	e := testServer(t)
	rec := doGET(t, e, "/api/seo/categories/living-room")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var graph []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &graph); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if graph[0]["@type"] != "CollectionPage" {
		t.Errorf("@type = %v", graph[0]["@type"])
	}
	list := graph[0]["mainEntity"].(map[string]interface{})
	if list["numberOfItems"].(float64) != 1 {
		t.Errorf("numberOfItems = %v", list["numberOfItems"])
	}

	if rec := doGET(t, e, "/api/seo/categories/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d", rec.Code)
	}
}
