package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashwi.GO/api"
	"ashwi.GO/config"
	"ashwi.GO/model/dto"
	catalogRepo "ashwi.GO/model/repository/catalog"
)

const categoryListCacheKey = "catalog:categories:list"

func init() {
	api.RegisterModule(RegisterCategoryRoutes)
}

func RegisterCategoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/categories")
	repo := catalogRepo.NewCategoryRepository(db)
	products := catalogRepo.NewProductRepository(db)

	// GET /api/categories – active categories with product counts.
	g.GET("", func(c echo.Context) error {
		if cached, ok := cachedCategoryList(); ok {
			return c.JSON(http.StatusOK, cached)
		}

		cats, err := repo.ListActive()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		counts, err := repo.ProductCounts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		results := make([]dto.Category, 0, len(cats))
		for i := range cats {
			results = append(results, dto.FromCategory(&cats[i], counts[cats[i].ID]))
		}
		resp := dto.CategoryListResponse{Count: len(results), Results: results}
		storeCategoryList(resp)
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/categories/:slug
	g.GET("/:slug", func(c echo.Context) error {
		cat, err := repo.GetBySlug(c.Param("slug"))
		if err != nil {
			return notFoundOrError(c, err, "category not found")
		}
		count, err := repo.ProductCount(cat.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, dto.FromCategory(cat, count))
	})

	// GET /api/categories/:slug/products – paginated, filterable.
	g.GET("/:slug/products", func(c echo.Context) error {
		slug := c.Param("slug")
		if _, err := repo.GetBySlug(slug); err != nil {
			return notFoundOrError(c, err, "category not found")
		}
		f := parseProductFilters(c)
		f.CategorySlug = &slug
		return listProducts(c, products, f)
	})
}

// cachedCategoryList reads the category listing from Redis, when
// configured. A nil client or any Redis error is a plain miss.
func cachedCategoryList() (dto.CategoryListResponse, bool) {
	var resp dto.CategoryListResponse
	if config.RedisClient == nil {
		return resp, false
	}
	raw, err := config.RedisClient.Get(config.RedisCtx(), categoryListCacheKey).Result()
	if err != nil {
		return resp, false
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return resp, false
	}
	return resp, true
}

func storeCategoryList(resp dto.CategoryListResponse) {
	if config.RedisClient == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	config.RedisClient.Set(config.RedisCtx(), categoryListCacheKey, raw, 5*time.Minute)
}

// InvalidateCategoryCache drops the cached category listing. Called by
// the seeder and anything else that mutates categories.
func InvalidateCategoryCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(config.RedisCtx(), categoryListCacheKey)
}

func notFoundOrError(c echo.Context, err error, msg string) error {
	if err == gorm.ErrRecordNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": msg})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
