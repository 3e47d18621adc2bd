package entity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"gorm.io/gorm"
)

// Slugify converts a name into a URL-safe slug.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NewSKU generates an "ASHWI-XXXXXXXX" stock keeping unit.
func NewSKU() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "ASHWI-" + strings.ToUpper(hex.EncodeToString(buf))
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.Slug == "" {
		s.Slug = Slugify(s.Name)
	}
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	if p.SKU == "" {
		p.SKU = NewSKU()
	}
	return nil
}
