package storefront

import (
	"context"
	"sync"

	"ashwi.GO/model/dto"
)

// FetchState is the lifecycle of the current product list fetch.
type FetchState int

const (
	StateIdle FetchState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// ProductListView drives the paginated product-list fetch cycle:
// filters + page → one API call → results + total count → derived page
// count. Each fetch carries a sequence number; a completion whose
// number is stale is discarded, so under rapid filter changes an older
// response can never overwrite a newer one. In-flight requests are not
// cancelled.
type ProductListView struct {
	client *Client

	mu       sync.Mutex
	seq      uint64
	state    FetchState
	filters  FilterState
	results  []dto.Product
	count    int
	pageSize int
	err      error
}

func NewProductListView(client *Client) *ProductListView {
	return &ProductListView{
		client:  client,
		filters: NewFilterState(),
	}
}

func (v *ProductListView) State() FetchState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ProductListView) Filters() FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// Results returns the currently displayed page of products.
func (v *ProductListView) Results() []dto.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.results
}

// Count is the collection total across all pages.
func (v *ProductListView) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.count
}

func (v *ProductListView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// QueryString is the canonical URL query for the current state.
func (v *ProductListView) QueryString() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters.Encode()
}

// Restore initializes the state from URL query values (page load).
func (v *ProductListView) Restore(ctx context.Context, rawQuery string) error {
	f, err := parseRawQuery(rawQuery)
	if err != nil {
		f = NewFilterState()
	}
	v.mu.Lock()
	v.filters = f
	v.mu.Unlock()
	return v.Fetch(ctx)
}

// Apply mutates the filter state and refetches. Filter mutators reset
// the page to 1, invalidating the prior pagination position.
func (v *ProductListView) Apply(ctx context.Context, mutate func(*FilterState)) error {
	v.mu.Lock()
	mutate(&v.filters)
	v.mu.Unlock()
	return v.Fetch(ctx)
}

// Search sets the free-text facet. An empty query clears the results
// without calling the API.
func (v *ProductListView) Search(ctx context.Context, query string) error {
	if query == "" {
		v.mu.Lock()
		v.seq++ // supersede anything in flight
		v.filters.Search = OptString{}
		v.filters.Page = 1
		v.results = nil
		v.count = 0
		v.pageSize = 0
		v.state = StateLoaded
		v.err = nil
		v.mu.Unlock()
		return nil
	}
	return v.Apply(ctx, func(f *FilterState) { f.SetSearch(query) })
}

// Fetch issues the list request for the current state. The page size
// is recorded from the response length: it is server-determined and
// can differ on the last page.
func (v *ProductListView) Fetch(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	id := v.seq
	f := v.filters
	v.state = StateLoading
	v.mu.Unlock()

	resp, err := v.client.Products(ctx, f)

	v.mu.Lock()
	defer v.mu.Unlock()
	if id != v.seq {
		// Superseded by a newer fetch; drop this completion.
		return nil
	}
	if err != nil {
		v.state = StateFailed
		v.err = err
		return err
	}
	v.results = resp.Results
	v.count = resp.Count
	v.pageSize = len(resp.Results)
	v.state = StateLoaded
	v.err = nil
	return nil
}

// TotalPages derives the page count from the collection total and the
// observed page size. An empty response counts as a single page, which
// also keeps the division well-defined.
func (v *ProductListView) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return totalPages(v.count, v.pageSize)
}

// HasPrevious reports whether the Previous control is enabled.
func (v *ProductListView) HasPrevious() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters.Page > 1
}

// HasNext reports whether the Next control is enabled.
func (v *ProductListView) HasNext() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters.Page < totalPages(v.count, v.pageSize)
}

// GoToPage jumps to a page, clamped to [1, TotalPages], and refetches.
func (v *ProductListView) GoToPage(ctx context.Context, page int) error {
	v.mu.Lock()
	max := totalPages(v.count, v.pageSize)
	if page < 1 {
		page = 1
	}
	if page > max {
		page = max
	}
	v.filters.SetPage(page)
	v.mu.Unlock()
	return v.Fetch(ctx)
}

// NextPage and PreviousPage move one page within bounds.
func (v *ProductListView) NextPage(ctx context.Context) error {
	if !v.HasNext() {
		return nil
	}
	return v.GoToPage(ctx, v.Filters().Page+1)
}

func (v *ProductListView) PreviousPage(ctx context.Context) error {
	if !v.HasPrevious() {
		return nil
	}
	return v.GoToPage(ctx, v.Filters().Page-1)
}

func totalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
