package dto

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	entity "ashwi.GO/model/entity"
)

func TestFromProduct_PrimaryImageFallback(t *testing.T) {
	p := entity.Product{
		Name: "Sofa", Price: "100.00",
		Images: []entity.ProductImage{
			{ID: 1, Image: "a.jpg"},
			{ID: 2, Image: "b.jpg"},
		},
	}
	out := FromProduct(&p, false)
	if out.PrimaryImage == nil || out.PrimaryImage.ID != 1 {
		t.Errorf("primary = %+v, want first image fallback", out.PrimaryImage)
	}

	p.Images[1].IsPrimary = true
	out = FromProduct(&p, false)
	if out.PrimaryImage == nil || out.PrimaryImage.ID != 2 {
		t.Errorf("primary = %+v, want flagged image", out.PrimaryImage)
	}

	p.Images = nil
	out = FromProduct(&p, false)
	if out.PrimaryImage != nil {
		t.Error("no images must yield nil primary")
	}
}

func TestFromProduct_ApprovedRatingAggregate(t *testing.T) {
	now := time.Now()
	p := entity.Product{
		Name: "Sofa", Price: "100.00",
		Reviews: []entity.ProductReview{
			{Rating: 5, IsApproved: true, CreatedAt: now},
			{Rating: 4, IsApproved: true, CreatedAt: now},
			{Rating: 1, IsApproved: false, CreatedAt: now}, // pending, excluded
		},
	}
	out := FromProduct(&p, true)
	if out.ReviewCount != 2 {
		t.Errorf("ReviewCount = %d, want 2 approved", out.ReviewCount)
	}
	if out.AverageRating != 4.5 {
		t.Errorf("AverageRating = %v, want 4.5", out.AverageRating)
	}
	if len(out.Reviews) != 2 {
		t.Errorf("Reviews = %d, want approved only", len(out.Reviews))
	}

	// List mapping drops review bodies but keeps the aggregate.
	out = FromProduct(&p, false)
	if len(out.Reviews) != 0 || out.ReviewCount != 2 {
		t.Errorf("list mapping: reviews %d count %d", len(out.Reviews), out.ReviewCount)
	}
}

func TestFromProduct_RatingRounding(t *testing.T) {
	p := entity.Product{
		Name: "Sofa", Price: "100.00",
		Reviews: []entity.ProductReview{
			{Rating: 5, IsApproved: true},
			{Rating: 4, IsApproved: true},
			{Rating: 4, IsApproved: true},
		},
	}
	out := FromProduct(&p, false)
	if out.AverageRating != 4.3 {
		t.Errorf("AverageRating = %v, want 4.3 (one decimal)", out.AverageRating)
	}
}

func TestFromProduct_JSONFields(t *testing.T) {
	p := entity.Product{
		Name: "Sofa", Price: "100.00",
		Features:       datatypes.JSON([]byte(`["Solid frame","Washable covers"]`)),
		Specifications: datatypes.JSON([]byte(`{"seats":3}`)),
	}
	out := FromProduct(&p, false)
	if len(out.Features) != 2 || out.Features[0] != "Solid frame" {
		t.Errorf("Features = %v", out.Features)
	}
	if out.Specifications["seats"].(float64) != 3 {
		t.Errorf("Specifications = %v", out.Specifications)
	}
}

func TestAbsoluteMediaURL(t *testing.T) {
	if got := AbsoluteMediaURL("https://cdn.example.com/x.jpg"); got != "https://cdn.example.com/x.jpg" {
		t.Errorf("absolute passthrough = %q", got)
	}
	if got := AbsoluteMediaURL(""); got != "" {
		t.Errorf("empty = %q", got)
	}
	got := AbsoluteMediaURL("/products/x.jpg")
	if got == "" || got[0] == '/' {
		t.Errorf("relative path must resolve against media base, got %q", got)
	}
}
