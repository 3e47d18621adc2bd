package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashwi.GO/api"
	"ashwi.GO/model/dto"
	catalogRepo "ashwi.GO/model/repository/catalog"
	"ashwi.GO/service/search"
)

const relatedProductsLimit = 4

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

func RegisterProductRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/products")
	repo := catalogRepo.NewProductRepository(db)

	// GET /api/products – full faceted listing.
	g.GET("", func(c echo.Context) error {
		return listProducts(c, repo, parseProductFilters(c))
	})

	// GET /api/products/featured
	g.GET("/featured", func(c echo.Context) error {
		f := parseProductFilters(c)
		f.Featured = true
		return listProducts(c, repo, f)
	})

	// GET /api/products/bestsellers
	g.GET("/bestsellers", func(c echo.Context) error {
		f := parseProductFilters(c)
		f.Bestseller = true
		return listProducts(c, repo, f)
	})

	// GET /api/products/on_sale
	g.GET("/on_sale", func(c echo.Context) error {
		f := parseProductFilters(c)
		f.OnSale = true
		return listProducts(c, repo, f)
	})

	// GET /api/products/search?q= – Elasticsearch-backed when the
	// cluster is up, SQL LIKE otherwise.
	g.GET("/search", func(c echo.Context) error {
		q := c.QueryParam("q")
		if q == "" {
			q = c.QueryParam("search")
		}
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q parameter is required"})
		}

		page, pageSize := api.PageParams(c)
		svc := search.GetSearchService()
		items, total, err := svc.SearchProducts(repo, q, page, pageSize)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, api.Envelope(c, total, page, pageSize, dto.FromProducts(items)))
	})

	// GET /api/products/:slug – detail with related products.
	g.GET("/:slug", func(c echo.Context) error {
		p, err := repo.GetBySlug(c.Param("slug"))
		if err != nil {
			return notFoundOrError(c, err, "product not found")
		}
		out := dto.FromProduct(p, true)

		related, err := repo.Related(p, relatedProductsLimit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		out.RelatedProducts = dto.FromProducts(related)
		return c.JSON(http.StatusOK, out)
	})
}

// listProducts runs one page of the filtered listing and writes the
// paginated envelope.
func listProducts(c echo.Context, repo *catalogRepo.ProductRepository, f catalogRepo.ProductFilters) error {
	page, pageSize := api.PageParams(c)
	items, total, err := repo.List(f, page, pageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, api.Envelope(c, total, page, pageSize, dto.FromProducts(items)))
}

// parseProductFilters reads the faceted filter query parameters.
// Unparsable numeric values are ignored rather than rejected.
func parseProductFilters(c echo.Context) catalogRepo.ProductFilters {
	var f catalogRepo.ProductFilters
	if v := c.QueryParam("category"); v != "" {
		f.CategorySlug = &v
	}
	if v := c.QueryParam("subcategory"); v != "" {
		f.SubcategorySlug = &v
	}
	if v := c.QueryParam("material"); v != "" {
		f.Material = &v
	}
	if v := c.QueryParam("finish"); v != "" {
		f.Finish = &v
	}
	if v := c.QueryParam("color"); v != "" {
		f.Color = &v
	}
	if v := c.QueryParam("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	f.OnSale = queryBool(c, "on_sale")
	f.InStock = queryBool(c, "in_stock")
	f.Featured = queryBool(c, "is_featured")
	f.Bestseller = queryBool(c, "is_bestseller")
	f.Search = c.QueryParam("search")
	f.Ordering = c.QueryParam("ordering")
	return f
}

func queryBool(c echo.Context, key string) bool {
	v := c.QueryParam(key)
	return v == "true" || v == "1"
}
