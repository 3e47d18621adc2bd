package seo

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashwi.GO/api"
	"ashwi.GO/config"
	"ashwi.GO/model/dto"
	catalogRepo "ashwi.GO/model/repository/catalog"
	seoBuilder "ashwi.GO/seo"
)

// collectionSchemaLimit bounds the product list embedded in a
// CollectionPage node.
const collectionSchemaLimit = 20

func init() {
	api.RegisterModule(RegisterSeoRoutes)
}

// RegisterSeoRoutes serves ready-made JSON-LD documents so pages can
// inline them without rebuilding schema logic client-side.
func RegisterSeoRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/seo")
	products := catalogRepo.NewProductRepository(db)
	categories := catalogRepo.NewCategoryRepository(db)

	g.GET("/website", func(c echo.Context) error {
		return jsonLD(c, seoBuilder.WebsiteSchema(config.LoadStoreInfo()))
	})

	g.GET("/organization", func(c echo.Context) error {
		return jsonLD(c, seoBuilder.OrganizationSchema(config.LoadStoreInfo()))
	})

	g.GET("/local-business", func(c echo.Context) error {
		return jsonLD(c, seoBuilder.LocalBusinessSchema(config.LoadStoreInfo()))
	})

	// Product node plus its breadcrumb trail, bundled as a JSON-LD graph.
	g.GET("/products/:slug", func(c echo.Context) error {
		p, err := products.GetBySlug(c.Param("slug"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		out := dto.FromProduct(p, true)
		store := config.LoadStoreInfo()
		trail := []seoBuilder.BreadcrumbItem{
			{Name: "Home", URL: store.URL},
			{Name: out.Category.Name, URL: store.URL + "/category/" + out.Category.Slug},
			{Name: out.Name, URL: store.URL + "/products/" + out.Slug},
		}
		return jsonLD(c, []map[string]interface{}{
			seoBuilder.ProductSchema(&out),
			seoBuilder.BreadcrumbSchema(trail),
		})
	})

	// CollectionPage node for a category over its first products.
	g.GET("/categories/:slug", func(c echo.Context) error {
		cat, err := categories.GetBySlug(c.Param("slug"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		slug := cat.Slug
		items, _, err := products.List(catalogRepo.ProductFilters{CategorySlug: &slug}, 1, collectionSchemaLimit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		count, err := categories.ProductCount(cat.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		catDTO := dto.FromCategory(cat, count)
		store := config.LoadStoreInfo()
		trail := []seoBuilder.BreadcrumbItem{
			{Name: "Home", URL: store.URL},
			{Name: catDTO.Name, URL: store.URL + "/category/" + catDTO.Slug},
		}
		return jsonLD(c, []map[string]interface{}{
			seoBuilder.CollectionSchema(&catDTO, dto.FromProducts(items)),
			seoBuilder.BreadcrumbSchema(trail),
		})
	})
}

func jsonLD(c echo.Context, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "application/ld+json", raw)
}
