package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName   string
	Port      string
	Env       string
	Debug     bool
	SiteName  string
	SiteURL   string
	MediaURL  string
	MediaDir  string
	PublicDir string
	PageSize  int
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		pageSize := 20
		if ps := os.Getenv("PAGE_SIZE"); ps != "" {
			if n, err := strconv.Atoi(ps); err == nil && n > 0 {
				pageSize = n
			}
		}
		siteName := os.Getenv("SITE_NAME")
		if siteName == "" {
			siteName = "Ashwi Furniture"
		}
		siteURL := os.Getenv("SITE_URL")
		if siteURL == "" {
			siteURL = "https://ashwi-furniture.com"
		}
		mediaURL := os.Getenv("MEDIA_URL")
		if mediaURL == "" {
			mediaURL = siteURL + "/media/"
		}
		mediaDir := os.Getenv("MEDIA_DIR")
		if mediaDir == "" {
			mediaDir = "media"
		}
		publicDir := os.Getenv("PUBLIC_DIR")
		if publicDir == "" {
			publicDir = "public"
		}
		AppConfig = &Config{
			AppName:   os.Getenv("APP_NAME"),
			Port:      os.Getenv("PORT"),
			Env:       os.Getenv("APP_ENV"),
			Debug:     os.Getenv("DEBUG") == "true",
			SiteName:  siteName,
			SiteURL:   siteURL,
			MediaURL:  mediaURL,
			MediaDir:  mediaDir,
			PublicDir: publicDir,
			PageSize:  pageSize,
		}
	})
}
