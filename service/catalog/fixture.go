package catalog

// defaultFixture is the built-in starter catalog.
func defaultFixture() map[string]interface{} {
	return map[string]interface{}{
		"categories": []map[string]interface{}{
			{
				"name":        "Living Room",
				"description": "Sofas, coffee tables and entertainment units for the living room",
				"subcategories": []map[string]interface{}{
					{"name": "Sofas", "description": "Fabric and leather sofas in two and three seat sizes"},
					{"name": "Coffee Tables", "description": "Solid wood and glass top coffee tables"},
					{"name": "TV Units", "description": "Entertainment units and media consoles"},
				},
			},
			{
				"name":        "Bedroom",
				"description": "Beds, wardrobes and dressers for restful bedrooms",
				"subcategories": []map[string]interface{}{
					{"name": "Beds", "description": "Platform, storage and upholstered beds"},
					{"name": "Wardrobes", "description": "Sliding and hinged door wardrobes"},
					{"name": "Dressers", "description": "Dressers and chests of drawers"},
				},
			},
			{
				"name":        "Dining Room",
				"description": "Dining tables, chairs and sideboards",
				"subcategories": []map[string]interface{}{
					{"name": "Dining Tables", "description": "Four to eight seater dining tables"},
					{"name": "Dining Chairs", "description": "Upholstered and solid wood dining chairs"},
				},
			},
			{
				"name":        "Office",
				"description": "Desks, office chairs and bookshelves for the home office",
				"subcategories": []map[string]interface{}{
					{"name": "Desks", "description": "Writing and standing desks"},
					{"name": "Office Chairs", "description": "Ergonomic task and executive chairs"},
					{"name": "Bookshelves", "description": "Open and closed shelving units"},
				},
			},
		},
		"products": []map[string]interface{}{
			{
				"name":              "Oslo 3-Seater Sofa",
				"category":          "Living Room",
				"subcategory":       "Sofas",
				"short_description": "Three seater sofa in stain resistant woven fabric",
				"description":       "The Oslo three seater pairs a kiln-dried hardwood frame with high-resilience foam cushions and a stain resistant woven fabric cover. Seats three comfortably with wide track arms and tapered oak legs.",
				"price":             "1299.00",
				"sale_price":        "999.00",
				"stock_quantity":    12,
				"material":          "Fabric",
				"finish":            "Natural Oak",
				"color":             "Stone Grey",
				"weight":            68.5,
				"features":          []string{"Kiln-dried hardwood frame", "High-resilience foam", "Removable cushion covers"},
				"specifications":    map[string]interface{}{"seats": 3, "assembly": "Legs only"},
				"is_featured":       true,
				"is_bestseller":     true,
			},
			{
				"name":              "Harbor Coffee Table",
				"category":          "Living Room",
				"subcategory":       "Coffee Tables",
				"short_description": "Solid acacia coffee table with lower shelf",
				"description":       "A solid acacia wood coffee table with a generous lower shelf for books and baskets. Finished with a matte water-based lacquer.",
				"price":             "349.00",
				"stock_quantity":    30,
				"material":          "Acacia Wood",
				"finish":            "Matte Lacquer",
				"color":             "Walnut Brown",
				"weight":            22,
				"features":          []string{"Solid acacia top", "Lower storage shelf"},
				"is_bestseller":     true,
			},
			{
				"name":              "Aria Platform Bed",
				"category":          "Bedroom",
				"subcategory":       "Beds",
				"short_description": "Queen platform bed with upholstered headboard",
				"description":       "The Aria queen platform bed needs no box spring: a slatted pine base supports the mattress directly, topped with a channel-stitched upholstered headboard.",
				"price":             "899.00",
				"stock_quantity":    8,
				"material":          "Pine, Linen",
				"finish":            "Upholstered",
				"color":             "Oatmeal",
				"weight":            54,
				"features":          []string{"No box spring needed", "Channel-stitched headboard"},
				"specifications":    map[string]interface{}{"size": "Queen", "slat_spacing_cm": 7},
				"is_featured":       true,
			},
			{
				"name":              "Meridian Dining Table",
				"category":          "Dining Room",
				"subcategory":       "Dining Tables",
				"short_description": "Extendable six to eight seater oak dining table",
				"description":       "Solid oak dining table with a butterfly leaf that extends seating from six to eight. The leaf stores inside the table when not in use.",
				"price":             "1499.00",
				"stock_quantity":    5,
				"material":          "Oak",
				"finish":            "Oiled",
				"color":             "Natural",
				"weight":            75,
				"features":          []string{"Butterfly extension leaf", "Seats 6 to 8"},
				"is_featured":       true,
			},
			{
				"name":              "Atlas Standing Desk",
				"category":          "Office",
				"subcategory":       "Desks",
				"short_description": "Electric sit-stand desk with memory presets",
				"description":       "Dual motor electric standing desk with four height memory presets and a bamboo top. Quiet lift with anti-collision stop.",
				"price":             "649.00",
				"sale_price":        "549.00",
				"stock_quantity":    0,
				"material":          "Bamboo, Steel",
				"finish":            "Powder Coated",
				"color":             "Black",
				"weight":            38,
				"features":          []string{"Dual motor lift", "Four memory presets", "Anti-collision stop"},
				"specifications":    map[string]interface{}{"height_range_cm": "62-127", "load_kg": 100},
			},
		},
	}
}
