//go:build !cli
// +build !cli

package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ashwi.GO/api"
	_ "ashwi.GO/api/catalog"
	_ "ashwi.GO/api/graphql"
	_ "ashwi.GO/api/seo"
	"ashwi.GO/config"
	"ashwi.GO/cron"
	_ "ashwi.GO/cron/jobs"
	_ "ashwi.GO/custom"
	entity "ashwi.GO/model/entity"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(
			&entity.Category{},
			&entity.Subcategory{},
			&entity.Product{},
			&entity.ProductImage{},
			&entity.ProductReview{},
		); err != nil {
			log.Fatalf("auto migrate failed: %v", err)
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})
	e.Static("/media", config.AppConfig.MediaDir)
	e.Static("/public", config.AppConfig.PublicDir)

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	if os.Getenv("CRON_ENABLED") == "true" {
		c := cron.StartCron()
		defer c.Stop()
		log.Println("Cron scheduler started.")
	}

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Ashwi ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
