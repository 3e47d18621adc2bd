package storefront

import (
	"net/url"
	"testing"
)

func TestParseQuery_RoundTrip(t *testing.T) {
	raw := "category=living-room&in_stock=true&max_price=1500&min_price=100.5&ordering=-price&page=3&search=sofa"
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatal(err)
	}
	f := ParseQuery(q)

	if f.Category.Value != "living-room" || !f.Category.Set {
		t.Errorf("Category = %+v", f.Category)
	}
	if f.MinPrice.Value != 100.5 || f.MaxPrice.Value != 1500 {
		t.Errorf("price range = %v..%v", f.MinPrice.Value, f.MaxPrice.Value)
	}
	if !f.InStock || f.OnSale {
		t.Errorf("bools = in_stock %v on_sale %v", f.InStock, f.OnSale)
	}
	if f.Page != 3 {
		t.Errorf("Page = %d", f.Page)
	}

	if got := f.Encode(); got != raw {
		t.Errorf("round trip:\n got %q\nwant %q", got, raw)
	}
}

func TestParseQuery_Defaults(t *testing.T) {
	f := ParseQuery(url.Values{})
	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
	if f.Category.Set || f.Search.Set || f.MinPrice.Set {
		t.Errorf("absent keys must stay absent: %+v", f)
	}
	if f.Encode() != "" {
		t.Errorf("empty state must encode to empty string, got %q", f.Encode())
	}
}

func TestParseQuery_UnparsableNumerics(t *testing.T) {
	q := url.Values{"min_price": {"abc"}, "max_price": {""}, "page": {"zero"}}
	f := ParseQuery(q)
	if f.MinPrice.Set || f.MaxPrice.Set {
		t.Errorf("unparsable prices must be absent: %+v", f)
	}
	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
}

func TestValues_BooleansOnlyWhenTrue(t *testing.T) {
	f := NewFilterState()
	f.SetOnSale(true)
	f.SetInStock(false)

	q := f.Values()
	if q.Get("on_sale") != "true" {
		t.Errorf("on_sale = %q", q.Get("on_sale"))
	}
	if _, ok := q["in_stock"]; ok {
		t.Error("false booleans must not be serialized")
	}
}

func TestValues_PageOnlyPastOne(t *testing.T) {
	f := NewFilterState()
	f.SetPage(1)
	if _, ok := f.Values()["page"]; ok {
		t.Error("page 1 is canonical and must not appear")
	}
	f.SetPage(4)
	if got := f.Values().Get("page"); got != "4" {
		t.Errorf("page = %q", got)
	}
}

func TestMutators_ResetPage(t *testing.T) {
	f := NewFilterState()
	f.SetPage(5)

	f.SetCategory("bedroom")
	if f.Page != 1 {
		t.Errorf("SetCategory: Page = %d, want reset to 1", f.Page)
	}

	f.SetPage(5)
	f.SetMaxPrice(2000)
	if f.Page != 1 {
		t.Errorf("SetMaxPrice: Page = %d, want reset to 1", f.Page)
	}

	f.SetPage(5)
	f.SetSearch("oak table")
	if f.Page != 1 {
		t.Errorf("SetSearch: Page = %d, want reset to 1", f.Page)
	}
}

func TestSetPage_DoesNotTouchFilters(t *testing.T) {
	f := NewFilterState()
	f.SetCategory("office")
	f.SetPage(3)
	if f.Category.Value != "office" || f.Page != 3 {
		t.Errorf("state = %+v", f)
	}
	f.SetPage(0)
	if f.Page != 1 {
		t.Errorf("Page = %d, want clamped to 1", f.Page)
	}
}

func TestClearPriceRange(t *testing.T) {
	f := NewFilterState()
	f.SetMinPrice(10)
	f.SetMaxPrice(100)
	f.SetPage(2)
	f.ClearPriceRange()
	if f.MinPrice.Set || f.MaxPrice.Set {
		t.Errorf("price range not cleared: %+v", f)
	}
	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
}

func TestValues_FloatFormatting(t *testing.T) {
	f := NewFilterState()
	f.SetMinPrice(100)
	f.SetMaxPrice(99.9)
	q := f.Values()
	if q.Get("min_price") != "100" {
		t.Errorf("min_price = %q, want 100 (no trailing zeros)", q.Get("min_price"))
	}
	if q.Get("max_price") != "99.9" {
		t.Errorf("max_price = %q", q.Get("max_price"))
	}
}
