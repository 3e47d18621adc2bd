// Package storefront is the client side of the catalog: a typed HTTP
// client over the REST API, the URL-synchronized filter state, and the
// paginated product list view that storefront pages drive.
package storefront

import (
	"net/url"
	"strconv"
)

// OptString is a present/absent string. Absence is distinct from the
// empty string so the query round-trip stays exact.
type OptString struct {
	Value string
	Set   bool
}

func String(v string) OptString {
	return OptString{Value: v, Set: true}
}

// OptFloat is a present/absent float64.
type OptFloat struct {
	Value float64
	Set   bool
}

func Float(v float64) OptFloat {
	return OptFloat{Value: v, Set: true}
}

// FilterState is the canonical faceted-filter state of a product list
// page. The URL query string is its single source of truth: state is
// parsed from the URL on load and re-serialized after every change.
// Boolean facets default to false when absent; everything else is
// explicitly present or absent.
type FilterState struct {
	Category     OptString
	Subcategory  OptString
	Material     OptString
	MinPrice     OptFloat
	MaxPrice     OptFloat
	OnSale       bool
	InStock      bool
	IsFeatured   bool
	IsBestseller bool
	Ordering     OptString
	Search       OptString
	Page         int
}

// NewFilterState returns the empty state on page 1.
func NewFilterState() FilterState {
	return FilterState{Page: 1}
}

// ParseQuery builds a FilterState from URL query parameters. Missing
// keys stay absent (booleans default false); unparsable numerics are
// treated as absent, not as errors.
func ParseQuery(q url.Values) FilterState {
	f := NewFilterState()
	if v := q.Get("category"); v != "" {
		f.Category = String(v)
	}
	if v := q.Get("subcategory"); v != "" {
		f.Subcategory = String(v)
	}
	if v := q.Get("material"); v != "" {
		f.Material = String(v)
	}
	if v := q.Get("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = Float(n)
		}
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = Float(n)
		}
	}
	f.OnSale = parseBool(q.Get("on_sale"))
	f.InStock = parseBool(q.Get("in_stock"))
	f.IsFeatured = parseBool(q.Get("is_featured"))
	f.IsBestseller = parseBool(q.Get("is_bestseller"))
	if v := q.Get("ordering"); v != "" {
		f.Ordering = String(v)
	}
	if v := q.Get("search"); v != "" {
		f.Search = String(v)
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			f.Page = n
		}
	}
	return f
}

// Values serializes the state back to query parameters. A key appears
// iff its value is present and non-empty; booleans appear only when
// true; page appears only past page 1 (page 1 is the canonical URL).
func (f FilterState) Values() url.Values {
	q := url.Values{}
	setString(q, "category", f.Category)
	setString(q, "subcategory", f.Subcategory)
	setString(q, "material", f.Material)
	setFloat(q, "min_price", f.MinPrice)
	setFloat(q, "max_price", f.MaxPrice)
	setBool(q, "on_sale", f.OnSale)
	setBool(q, "in_stock", f.InStock)
	setBool(q, "is_featured", f.IsFeatured)
	setBool(q, "is_bestseller", f.IsBestseller)
	setString(q, "ordering", f.Ordering)
	setString(q, "search", f.Search)
	if f.Page > 1 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}

// Encode returns the canonical query string for the current state.
func (f FilterState) Encode() string {
	return f.Values().Encode()
}

// --- mutators; every filter change invalidates the pagination position ---

func (f *FilterState) SetCategory(v string) {
	f.Category = String(v)
	f.resetPage()
}

func (f *FilterState) SetSubcategory(v string) {
	f.Subcategory = String(v)
	f.resetPage()
}

func (f *FilterState) SetMaterial(v string) {
	f.Material = String(v)
	f.resetPage()
}

func (f *FilterState) SetMinPrice(v float64) {
	f.MinPrice = Float(v)
	f.resetPage()
}

func (f *FilterState) SetMaxPrice(v float64) {
	f.MaxPrice = Float(v)
	f.resetPage()
}

func (f *FilterState) ClearPriceRange() {
	f.MinPrice = OptFloat{}
	f.MaxPrice = OptFloat{}
	f.resetPage()
}

func (f *FilterState) SetOnSale(v bool) {
	f.OnSale = v
	f.resetPage()
}

func (f *FilterState) SetInStock(v bool) {
	f.InStock = v
	f.resetPage()
}

func (f *FilterState) SetFeatured(v bool) {
	f.IsFeatured = v
	f.resetPage()
}

func (f *FilterState) SetBestseller(v bool) {
	f.IsBestseller = v
	f.resetPage()
}

func (f *FilterState) SetOrdering(v string) {
	f.Ordering = String(v)
	f.resetPage()
}

func (f *FilterState) SetSearch(v string) {
	f.Search = String(v)
	f.resetPage()
}

// SetPage moves the pagination cursor without touching the filters.
func (f *FilterState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.Page = page
}

func (f *FilterState) resetPage() {
	f.Page = 1
}

// parseRawQuery parses an encoded query string into a FilterState.
func parseRawQuery(rawQuery string) (FilterState, error) {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return NewFilterState(), err
	}
	return ParseQuery(q), nil
}

func parseBool(v string) bool {
	return v == "true" || v == "1"
}

func setString(q url.Values, key string, v OptString) {
	if v.Set && v.Value != "" {
		q.Set(key, v.Value)
	}
}

func setFloat(q url.Values, key string, v OptFloat) {
	if v.Set {
		q.Set(key, strconv.FormatFloat(v.Value, 'f', -1, 64))
	}
}

func setBool(q url.Values, key string, v bool) {
	if v {
		q.Set(key, "true")
	}
}
