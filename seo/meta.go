package seo

import (
	"strings"

	"ashwi.GO/config"
)

// metaDescriptionLimit is the safe length for description meta tags.
const metaDescriptionLimit = 160

// PageTitle builds a "<title> | <site>" page title. An empty title
// yields the site default; titles already carrying the site name pass
// through unchanged.
func PageTitle(title string) string {
	config.LoadAppConfig()
	site := config.AppConfig.SiteName
	if title == "" {
		return site + " - Quality Home Furniture & Decor"
	}
	if strings.Contains(title, site) {
		return title
	}
	return title + " | " + site
}

// TruncateDescription trims a description to maxLength characters,
// ellipsized. maxLength <= 0 uses the meta tag default of 160.
func TruncateDescription(description string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = metaDescriptionLimit
	}
	runes := []rune(description)
	if len(runes) <= maxLength {
		return description
	}
	return strings.TrimSpace(string(runes[:maxLength-3])) + "..."
}

// Keywords joins non-empty keywords into a meta keyword string.
func Keywords(keywords ...string) string {
	kept := keywords[:0]
	for _, k := range keywords {
		if k != "" {
			kept = append(kept, k)
		}
	}
	return strings.Join(kept, ", ")
}

// AbsoluteURL resolves a path against the site base URL.
func AbsoluteURL(path string) string {
	config.LoadAppConfig()
	return strings.TrimSuffix(config.AppConfig.SiteURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// SocialImageURL returns an absolute image URL for social sharing,
// falling back to the configured default og image.
func SocialImageURL(imageURL string) string {
	if imageURL == "" {
		return config.LoadStoreInfo().DefaultImage
	}
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	return AbsoluteURL(imageURL)
}
