package jobs

import (
	"log"

	"ashwi.GO/config"
	"ashwi.GO/cron"
	catalogRepo "ashwi.GO/model/repository/catalog"
	"ashwi.GO/service/search"
)

func init() {
	cron.Register("search:reindex", "@every 1h", func(...string) {
		n, err := ReindexProducts()
		if err != nil {
			log.Printf("search:reindex: %v", err)
			return
		}
		log.Printf("search:reindex: indexed %d products", n)
	})
}

// ReindexProducts pushes every active product into the search index.
func ReindexProducts() (int, error) {
	svc := search.GetSearchService()
	if !svc.Enabled() {
		// Nothing to do without a cluster; SQL fallback needs no index.
		return 0, nil
	}

	db, err := config.NewDB()
	if err != nil {
		return 0, err
	}
	products, err := catalogRepo.NewProductRepository(db).AllActive()
	if err != nil {
		return 0, err
	}
	return svc.IndexProducts(products)
}
