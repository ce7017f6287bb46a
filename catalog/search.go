package catalog

import "strings"

// Filter holds the optional search criteria. The zero value of each field
// deactivates its predicate, which mirrors the wire contract where omitted
// JSON fields decode to zero values. Known quirk kept for compatibility:
// "price <= 0" and "rating >= 0" cannot be expressed, because 0 means
// "no filter".
type Filter struct {
	Category  string  `json:"category"`
	MaxPrice  float64 `json:"max_price"`
	MinRating float64 `json:"min_rating"`
	Query     string  `json:"query"`
}

// Search returns the products passing every active predicate, in catalog
// order. Predicates compose with AND; there is no ranking and no
// pagination. An empty filter returns the full catalog.
func (c *Catalog) Search(f Filter) []Product {
	out := make([]Product, 0, len(c.byID))
	for _, g := range c.groups {
		for _, p := range g.Products {
			if f.matches(g.Name, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func (f Filter) matches(group string, p Product) bool {
	if f.Category != "" {
		want := strings.ToLower(f.Category)
		// Either the curation group or the product's own tag may match.
		if want != strings.ToLower(group) && want != strings.ToLower(p.Category) {
			return false
		}
	}
	if f.MaxPrice != 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinRating != 0 && p.Rating < f.MinRating {
		return false
	}
	if f.Query != "" {
		haystack := strings.ToLower(p.Name + " " + p.Category + " " + p.Description + " " + group)
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}
	return true
}
