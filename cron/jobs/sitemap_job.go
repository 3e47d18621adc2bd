// Package jobs holds the scheduled background jobs. Each job registers
// itself from init(); the server blank-imports this package so the
// scheduler picks them up.
package jobs

import (
	"encoding/json"
	"encoding/xml"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ashwi.GO/config"
	"ashwi.GO/cron"
	catalogRepo "ashwi.GO/model/repository/catalog"
	"ashwi.GO/seo"
)

func init() {
	cron.Register("sitemap:generate", "@daily", func(...string) {
		if err := GenerateSitemap(); err != nil {
			log.Printf("sitemap:generate: %v", err)
		}
	})
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GenerateSitemap writes sitemap.xml plus the sitewide JSON-LD feed
// (organization and website nodes) under the public directory.
func GenerateSitemap() error {
	config.LoadAppConfig()
	site := strings.TrimSuffix(config.AppConfig.SiteURL, "/")
	dir := config.AppConfig.PublicDir

	db, err := config.NewDB()
	if err != nil {
		return err
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: site + "/", ChangeFreq: "daily", Priority: "1.0"},
		sitemapURL{Loc: site + "/products", ChangeFreq: "daily", Priority: "0.9"},
	)

	cats, err := catalogRepo.NewCategoryRepository(db).ListActive()
	if err != nil {
		return err
	}
	for _, c := range cats {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site + "/category/" + c.Slug,
			LastMod:    c.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	products, err := catalogRepo.NewProductRepository(db).AllActive()
	if err != nil {
		return err
	}
	for _, p := range products {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site + "/products/" + p.Slug,
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	raw, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	raw = append([]byte(xml.Header), raw...)
	if err := os.WriteFile(filepath.Join(dir, "sitemap.xml"), raw, 0o644); err != nil {
		return err
	}

	store := config.LoadStoreInfo()
	feed := map[string]interface{}{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"organization": seo.OrganizationSchema(store),
		"website":      seo.WebsiteSchema(store),
	}
	feedRaw, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "site-schema.json"), feedRaw, 0o644)
}
