// Package catalog holds the static product catalog and its filter engine.
// The catalog is built once at startup and never mutated afterwards, so
// every operation is safe for concurrent use without locking.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")

// Product is an immutable catalog record. Category is the product's own
// tag and is unrelated to the group the product is curated under (the
// "electronics" group contains a product whose category is "smartphone").
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Group is an ordered bucket of products under a curation key such as
// "electronics" or "books".
type Group struct {
	Name     string
	Products []Product
}

// Catalog preserves group declaration order and in-group product order.
// Both orders are observable: listings concatenate groups in order, and
// the assistant prompt embeds only the first products of that sequence.
type Catalog struct {
	groups []Group
	byID   map[string]Product
}

func New(groups []Group) (*Catalog, error) {
	byID := make(map[string]Product)
	for _, g := range groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, errors.New("group name is empty")
		}
		for _, p := range g.Products {
			if strings.TrimSpace(p.ID) == "" {
				return nil, fmt.Errorf("group %s: product id is empty", name)
			}
			if _, exists := byID[p.ID]; exists {
				return nil, fmt.Errorf("duplicate product id %q", p.ID)
			}
			if p.Price < 0 {
				return nil, fmt.Errorf("product %s: price must be >= 0", p.ID)
			}
			byID[p.ID] = p
		}
	}

	return &Catalog{
		groups: groups,
		byID:   byID,
	}, nil
}

func MustNew(groups []Group) *Catalog {
	c, err := New(groups)
	if err != nil {
		panic(err)
	}
	return c
}

// Products returns every product across all groups, in group declaration
// order and in-group order. The returned slice is a fresh copy.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.byID))
	for _, g := range c.groups {
		out = append(out, g.Products...)
	}
	return out
}

// Product returns the product with the given id. Ids are unique across
// all groups, enforced by New.
func (c *Catalog) Product(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// GroupNames returns the group keys in declaration order, once each.
func (c *Catalog) GroupNames() []string {
	names := make([]string, 0, len(c.groups))
	for _, g := range c.groups {
		names = append(names, g.Name)
	}
	return names
}

// Len reports the total number of products.
func (c *Catalog) Len() int {
	return len(c.byID)
}
