// Package search wraps the Elasticsearch product index. The service is
// a process-wide singleton; when no cluster is reachable it degrades to
// the repository's SQL search so the storefront keeps working.
package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	entity "ashwi.GO/model/entity"
	catalogRepo "ashwi.GO/model/repository/catalog"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns the singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

type SearchService struct {
	client *elasticsearch.Client
	prefix string
}

func NewSearchService() *SearchService {
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "ashwi"
	}

	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		// No cluster configured, SQL fallback only.
		return &SearchService{prefix: prefix}
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &SearchService{prefix: prefix}
	}

	return &SearchService{
		client: client,
		prefix: prefix,
	}
}

func (s *SearchService) indexName() string {
	return s.prefix + "_catalog_product"
}

// Enabled reports whether an Elasticsearch client is configured.
func (s *SearchService) Enabled() bool {
	return s.client != nil
}

// SearchProducts runs a relevance-ranked product search. With a live
// cluster it queries the product index and hydrates hits from the
// database in ranked order; otherwise it falls back to the repository's
// LIKE-based search.
func (s *SearchService) SearchProducts(repo *catalogRepo.ProductRepository, query string, page, pageSize int) ([]entity.Product, int, error) {
	if s.client == nil {
		return repo.List(catalogRepo.ProductFilters{Search: query}, page, pageSize)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	body := map[string]interface{}{
		"from": (page - 1) * pageSize,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "sku^2", "category^2", "subcategory^2", "description", "short_description", "material", "color"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithIndex(s.indexName()),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		// Cluster down mid-flight, degrade the same way.
		return repo.List(catalogRepo.ProductFilters{Search: query}, page, pageSize)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, 0, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, 0, err
	}

	var ids []uint
	for _, hit := range esResp.Hits.Hits {
		if id, ok := hit.Source["id"].(float64); ok {
			ids = append(ids, uint(id))
		}
	}

	products, err := repo.ByIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	return products, esResp.Hits.Total.Value, nil
}

// IndexProducts bulk-indexes the given products. Existing documents are
// overwritten; the call is a no-op error when no cluster is configured.
func (s *SearchService) IndexProducts(products []entity.Product) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("elasticsearch not configured")
	}

	var buf bytes.Buffer
	for i := range products {
		p := &products[i]
		meta := fmt.Sprintf(`{"index":{"_index":%q,"_id":%q}}`, s.indexName(), strconv.FormatUint(uint64(p.ID), 10))
		buf.WriteString(meta)
		buf.WriteByte('\n')
		doc, err := json.Marshal(productDoc(p))
		if err != nil {
			return 0, err
		}
		buf.Write(doc)
		buf.WriteByte('\n')
	}
	if buf.Len() == 0 {
		return 0, nil
	}

	res, err := s.client.Bulk(bytes.NewReader(buf.Bytes()), s.client.Bulk.WithRefresh("true"))
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, fmt.Errorf("elasticsearch bulk error: %s", res.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  *struct {
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		return 0, err
	}
	indexed := 0
	var reasons []string
	for _, item := range bulkResp.Items {
		for _, op := range item {
			if op.Status >= 200 && op.Status < 300 {
				indexed++
			} else if op.Error != nil {
				reasons = append(reasons, op.Error.Reason)
			}
		}
	}
	if bulkResp.Errors && len(reasons) > 0 {
		return indexed, fmt.Errorf("bulk index had failures: %s", strings.Join(reasons, "; "))
	}
	return indexed, nil
}

// productDoc flattens a product for the search index.
func productDoc(p *entity.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":                p.ID,
		"name":              p.Name,
		"slug":              p.Slug,
		"sku":               p.SKU,
		"description":       p.Description,
		"short_description": p.ShortDescription,
		"category":          p.Category.Name,
		"subcategory":       p.Subcategory.Name,
		"material":          p.Material,
		"color":             p.Color,
		"price":             p.Price,
		"is_featured":       p.IsFeatured,
		"is_bestseller":     p.IsBestseller,
		"in_stock":          p.StockQuantity > 0,
	}
}
