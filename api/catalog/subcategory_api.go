package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashwi.GO/api"
	"ashwi.GO/model/dto"
	catalogRepo "ashwi.GO/model/repository/catalog"
)

func init() {
	api.RegisterModule(RegisterSubcategoryRoutes)
}

func RegisterSubcategoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/subcategories")
	repo := catalogRepo.NewSubcategoryRepository(db)
	categories := catalogRepo.NewCategoryRepository(db)
	products := catalogRepo.NewProductRepository(db)

	// GET /api/subcategories – active subcategories, optionally narrowed
	// by ?category=<slug>.
	g.GET("", func(c echo.Context) error {
		subs, err := repo.ListActive(c.QueryParam("category"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		subCounts, err := repo.ProductCounts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		catCounts, err := categories.ProductCounts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		results := make([]dto.Subcategory, 0, len(subs))
		for i := range subs {
			s := &subs[i]
			results = append(results, dto.FromSubcategory(s, subCounts[s.ID], catCounts[s.CategoryID]))
		}
		return c.JSON(http.StatusOK, dto.SubcategoryListResponse{Count: len(results), Results: results})
	})

	// GET /api/subcategories/:slug
	g.GET("/:slug", func(c echo.Context) error {
		sub, err := repo.GetBySlug(c.Param("slug"))
		if err != nil {
			return notFoundOrError(c, err, "subcategory not found")
		}
		subCount, err := repo.ProductCount(sub.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		catCount, err := categories.ProductCount(sub.CategoryID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, dto.FromSubcategory(sub, subCount, catCount))
	})

	// GET /api/subcategories/:slug/products
	g.GET("/:slug/products", func(c echo.Context) error {
		slug := c.Param("slug")
		if _, err := repo.GetBySlug(slug); err != nil {
			return notFoundOrError(c, err, "subcategory not found")
		}
		f := parseProductFilters(c)
		f.SubcategorySlug = &slug
		return listProducts(c, products, f)
	})
}
