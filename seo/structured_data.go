// Package seo builds schema.org JSON-LD documents and page metadata
// for the storefront. All builders are pure: they never touch the
// network or database, and absent optional fields are omitted from the
// payload rather than emitted as null.
package seo

import (
	"strconv"
	"time"

	"ashwi.GO/config"
	"ashwi.GO/model/dto"
)

const schemaContext = "https://schema.org"

// maxSchemaReviews bounds the nested review list on product nodes.
const maxSchemaReviews = 5

// BreadcrumbItem is one ordered entry of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// FAQ is one question/answer pair for FAQPage nodes.
type FAQ struct {
	Question string
	Answer   string
}

// OrganizationSchema builds the FurnitureStore node from store config.
func OrganizationSchema(store *config.StoreInfo) map[string]interface{} {
	return map[string]interface{}{
		"@context":    schemaContext,
		"@type":       "FurnitureStore",
		"name":        store.Name,
		"description": store.Description,
		"url":         store.URL,
		"logo":        store.LogoURL,
		"image":       store.ImageURL,
		"telephone":   store.Telephone,
		"email":       store.Email,
		"address":     postalAddress(store),
		"priceRange":  store.PriceRange,
		"openingHoursSpecification": openingHours(store),
	}
}

// LocalBusinessSchema builds the LocalBusiness node with geo coordinates.
func LocalBusinessSchema(store *config.StoreInfo) map[string]interface{} {
	return map[string]interface{}{
		"@context":    schemaContext,
		"@type":       "LocalBusiness",
		"@id":         store.URL + "/#localbusiness",
		"name":        store.Name,
		"description": store.Description,
		"url":         store.URL,
		"telephone":   store.Telephone,
		"email":       store.Email,
		"address":     postalAddress(store),
		"geo": map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  store.Latitude,
			"longitude": store.Longitude,
		},
		"priceRange": store.PriceRange,
		"image":      store.ImageURL,
		"logo":       store.LogoURL,
	}
}

// WebsiteSchema builds the WebSite node. The urlTemplate keeps the
// literal {search_term_string} placeholder: it is a template marker,
// never URL-encoded.
func WebsiteSchema(store *config.StoreInfo) map[string]interface{} {
	return map[string]interface{}{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     store.Name,
		"url":      store.URL,
		"potentialAction": map[string]interface{}{
			"@type": "SearchAction",
			"target": map[string]interface{}{
				"@type":       "EntryPoint",
				"urlTemplate": store.URL + "/search?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// ProductSchema builds the Product node. The offer price is the sale
// price when set, else the base price. aggregateRating appears only
// when the product has approved reviews; a zero-rating block is never
// emitted.
func ProductSchema(p *dto.Product) map[string]interface{} {
	store := config.LoadStoreInfo()

	schema := map[string]interface{}{
		"@context":    schemaContext,
		"@type":       "Product",
		"name":        p.Name,
		"description": p.Description,
		"sku":         p.SKU,
		"brand": map[string]interface{}{
			"@type": "Brand",
			"name":  store.Name,
		},
		"offers": map[string]interface{}{
			"@type":           "Offer",
			"url":             store.URL + "/products/" + p.Slug,
			"priceCurrency":   "USD",
			"price":           currentPrice(p),
			"priceValidUntil": time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
			"availability":    availability(p),
			"itemCondition":   "https://schema.org/NewCondition",
			"seller": map[string]interface{}{
				"@type": "Organization",
				"name":  store.Name,
			},
		},
	}

	if img := productImage(p); img != "" {
		schema["image"] = img
	}
	if p.Category.Name != "" {
		schema["category"] = p.Category.Name
	}
	if p.Material != "" {
		schema["material"] = p.Material
	}
	if p.Color != "" {
		schema["color"] = p.Color
	}
	if p.Weight != nil {
		schema["weight"] = map[string]interface{}{
			"@type":    "QuantitativeValue",
			"value":    *p.Weight,
			"unitCode": "KGM",
		}
	}
	if p.ReviewCount > 0 {
		schema["aggregateRating"] = map[string]interface{}{
			"@type":       "AggregateRating",
			"ratingValue": p.AverageRating,
			"reviewCount": p.ReviewCount,
			"bestRating":  "5",
			"worstRating": "1",
		}
	}
	if len(p.Reviews) > 0 {
		reviews := p.Reviews
		if len(reviews) > maxSchemaReviews {
			reviews = reviews[:maxSchemaReviews]
		}
		nodes := make([]map[string]interface{}, 0, len(reviews))
		for _, rv := range reviews {
			nodes = append(nodes, reviewNode(rv))
		}
		schema["review"] = nodes
	}
	return schema
}

// BreadcrumbSchema builds a BreadcrumbList with 1-based positions
// matching input order. Empty input yields an empty element list.
func BreadcrumbSchema(items []BreadcrumbItem) map[string]interface{} {
	elements := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}
	return map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// CollectionSchema builds a CollectionPage for a category over a
// bounded product slice. numberOfItems is the slice length, never the
// category's total product count; callers truncate.
func CollectionSchema(category *dto.Category, products []dto.Product) map[string]interface{} {
	store := config.LoadStoreInfo()
	elements := make([]map[string]interface{}, 0, len(products))
	for i, p := range products {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      store.URL + "/products/" + p.Slug,
		})
	}
	return map[string]interface{}{
		"@context":    schemaContext,
		"@type":       "CollectionPage",
		"name":        category.Name + " Furniture",
		"description": category.Description,
		"url":         store.URL + "/category/" + category.Slug,
		"mainEntity": map[string]interface{}{
			"@type":           "ItemList",
			"numberOfItems":   len(products),
			"itemListElement": elements,
		},
	}
}

// ItemListSchema builds a named ItemList of product summaries.
func ItemListSchema(products []dto.Product, listName string) map[string]interface{} {
	store := config.LoadStoreInfo()
	elements := make([]map[string]interface{}, 0, len(products))
	for i, p := range products {
		item := map[string]interface{}{
			"@type": "Product",
			"name":  p.Name,
			"url":   store.URL + "/products/" + p.Slug,
		}
		if img := productImage(&p); img != "" {
			item["image"] = img
		}
		if d := shortDescription(&p); d != "" {
			item["description"] = d
		}
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     item,
		})
	}
	return map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"name":            listName,
		"numberOfItems":   len(products),
		"itemListElement": elements,
	}
}

// OfferCatalogSchema builds an OfferCatalog over a product slice.
func OfferCatalogSchema(products []dto.Product) map[string]interface{} {
	store := config.LoadStoreInfo()
	elements := make([]map[string]interface{}, 0, len(products))
	for i, p := range products {
		offered := map[string]interface{}{
			"@type": "Product",
			"name":  p.Name,
			"url":   store.URL + "/products/" + p.Slug,
			"sku":   p.SKU,
			"offers": map[string]interface{}{
				"@type":         "Offer",
				"price":         currentPrice(&p),
				"priceCurrency": "USD",
				"availability":  availability(&p),
			},
		}
		if img := productImage(&p); img != "" {
			offered["image"] = img
		}
		if d := shortDescription(&p); d != "" {
			offered["description"] = d
		}
		elements = append(elements, map[string]interface{}{
			"@type":       "Offer",
			"position":    i + 1,
			"itemOffered": offered,
		})
	}
	return map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "OfferCatalog",
		"name":            store.Name + " Product Catalog",
		"description":     "Browse our extensive catalog of premium furniture for every room in your home",
		"itemListElement": elements,
	}
}

// FAQSchema builds a FAQPage node.
func FAQSchema(faqs []FAQ) map[string]interface{} {
	entities := make([]map[string]interface{}, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]interface{}{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return map[string]interface{}{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

func postalAddress(store *config.StoreInfo) map[string]interface{} {
	return map[string]interface{}{
		"@type":           "PostalAddress",
		"streetAddress":   store.Street,
		"addressLocality": store.Locality,
		"addressRegion":   store.Region,
		"postalCode":      store.PostalCode,
		"addressCountry":  store.Country,
	}
}

func openingHours(store *config.StoreInfo) []map[string]interface{} {
	specs := make([]map[string]interface{}, 0, len(store.Hours))
	for _, h := range store.Hours {
		specs = append(specs, map[string]interface{}{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": h.Days,
			"opens":     h.Opens,
			"closes":    h.Closes,
		})
	}
	return specs
}

func reviewNode(rv dto.ProductReview) map[string]interface{} {
	rating := rv.Rating
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return map[string]interface{}{
		"@type": "Review",
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  rv.CustomerName,
		},
		"datePublished": rv.CreatedAt.Format(time.RFC3339),
		"reviewRating": map[string]interface{}{
			"@type":       "Rating",
			"ratingValue": rating,
			"bestRating":  "5",
			"worstRating": "1",
		},
		"reviewBody": rv.Comment,
		"name":       rv.Title,
	}
}

// currentPrice parses the effective price (sale price wins) to a number.
func currentPrice(p *dto.Product) float64 {
	raw := p.Price
	if p.SalePrice != nil && *p.SalePrice != "" {
		raw = *p.SalePrice
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func availability(p *dto.Product) string {
	if p.StockQuantity > 0 {
		return "https://schema.org/InStock"
	}
	return "https://schema.org/OutOfStock"
}

func productImage(p *dto.Product) string {
	if p.PrimaryImage != nil {
		return p.PrimaryImage.ImageURL
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}

func shortDescription(p *dto.Product) string {
	if p.ShortDescription != "" {
		return p.ShortDescription
	}
	return p.Description
}
