package config

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// StoreConfig holds the business metadata injected into organization,
// local-business and website structured data. Loaded once; overridable
// per deployment via a JSON file (STORE_INFO_FILE).
var StoreConfig *StoreInfo
var storeOnce sync.Once

type OpeningHours struct {
	Days   []string `mapstructure:"days" json:"days"`
	Opens  string   `mapstructure:"opens" json:"opens"`
	Closes string   `mapstructure:"closes" json:"closes"`
}

type StoreInfo struct {
	Name          string         `mapstructure:"name" json:"name"`
	Description   string         `mapstructure:"description" json:"description"`
	URL           string         `mapstructure:"url" json:"url"`
	LogoURL       string         `mapstructure:"logo_url" json:"logo_url"`
	ImageURL      string         `mapstructure:"image_url" json:"image_url"`
	DefaultImage  string         `mapstructure:"default_image" json:"default_image"`
	Telephone     string         `mapstructure:"telephone" json:"telephone"`
	Email         string         `mapstructure:"email" json:"email"`
	Street        string         `mapstructure:"street" json:"street"`
	Locality      string         `mapstructure:"locality" json:"locality"`
	Region        string         `mapstructure:"region" json:"region"`
	PostalCode    string         `mapstructure:"postal_code" json:"postal_code"`
	Country       string         `mapstructure:"country" json:"country"`
	PriceRange    string         `mapstructure:"price_range" json:"price_range"`
	Latitude      string         `mapstructure:"latitude" json:"latitude"`
	Longitude     string         `mapstructure:"longitude" json:"longitude"`
	TwitterHandle string         `mapstructure:"twitter_handle" json:"twitter_handle"`
	Hours         []OpeningHours `mapstructure:"hours" json:"hours"`
}

func storeDefaults() map[string]interface{} {
	LoadAppConfig()
	site := AppConfig.SiteURL
	return map[string]interface{}{
		"name":          AppConfig.SiteName,
		"description":   "Premium quality furniture for your home - living room, bedroom, dining room, office & outdoor furniture",
		"url":           site,
		"logo_url":      site + "/logo.png",
		"image_url":     site + "/images/store-front.jpg",
		"default_image": site + "/images/og-image.jpg",
		"telephone":     "+1-555-FURNITURE",
		"email":         "info@ashwi-furniture.com",
		"street":        "123 Furniture Street",
		"locality":      "New York",
		"region":        "NY",
		"postal_code":   "10001",
		"country":       "US",
		"price_range":   "$$",
		"latitude":      "40.7128",
		"longitude":     "-74.0060",
		"twitter_handle": "@ashwifurniture",
		"hours": []map[string]interface{}{
			{"days": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, "opens": "09:00", "closes": "18:00"},
			{"days": []string{"Saturday", "Sunday"}, "opens": "10:00", "closes": "17:00"},
		},
	}
}

// LoadStoreInfo initializes StoreConfig from defaults merged with the
// optional override file.
func LoadStoreInfo() *StoreInfo {
	storeOnce.Do(func() {
		raw := storeDefaults()
		if path := os.Getenv("STORE_INFO_FILE"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("store info file %s: %v (using defaults)", path, err)
			} else {
				var overrides map[string]interface{}
				if err := json.Unmarshal(data, &overrides); err != nil {
					log.Printf("store info file %s: %v (using defaults)", path, err)
				} else {
					for k, v := range overrides {
						raw[k] = v
					}
				}
			}
		}
		info := &StoreInfo{}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           info,
			TagName:          "mapstructure",
			WeaklyTypedInput: true,
		})
		if err != nil {
			log.Fatalf("store info decoder: %v", err)
		}
		if err := dec.Decode(raw); err != nil {
			log.Fatalf("store info decode: %v", err)
		}
		StoreConfig = info
	})
	return StoreConfig
}
