package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ashwi.GO/api"
	"ashwi.GO/model/dto"
	entity "ashwi.GO/model/entity"
	catalogRepo "ashwi.GO/model/repository/catalog"
)

func init() {
	api.RegisterModule(RegisterReviewRoutes)
}

func RegisterReviewRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := catalogRepo.NewReviewRepository(db)

	// GET /api/products/:slug/reviews – approved reviews, newest first.
	apiGroup.GET("/products/:slug/reviews", func(c echo.Context) error {
		reviews, err := repo.ApprovedByProductSlug(c.Param("slug"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		results := make([]dto.ProductReview, 0, len(reviews))
		for i := range reviews {
			results = append(results, dto.FromReview(&reviews[i]))
		}
		return c.JSON(http.StatusOK, echo.Map{"count": len(results), "results": results})
	})

	// POST /api/products/:slug/reviews – submit a review. New reviews
	// await moderation and stay out of listings until approved.
	apiGroup.POST("/products/:slug/reviews", func(c echo.Context) error {
		var body struct {
			CustomerName string `json:"customer_name"`
			Email        string `json:"email"`
			Rating       int    `json:"rating"`
			Title        string `json:"title"`
			Comment      string `json:"comment"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.CustomerName == "" || body.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name and email are required"})
		}
		if body.Rating < 1 || body.Rating > 5 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
		}

		review := entity.ProductReview{
			CustomerName: body.CustomerName,
			Email:        body.Email,
			Rating:       body.Rating,
			Title:        body.Title,
			Comment:      body.Comment,
		}
		if err := repo.Create(c.Param("slug"), &review); err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, dto.FromReview(&review))
	})
}
