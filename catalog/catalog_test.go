package catalog

import (
	"errors"
	"testing"
)

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := New([]Group{
		{
			Name: "fruit",
			Products: []Product{
				{ID: "apple", Name: "Apple", Price: 1, Rating: 4.0, Category: "pome"},
				{ID: "mango", Name: "Mango", Price: 2, Rating: 4.5, Category: "tropical"},
			},
		},
		{
			Name: "veg",
			Products: []Product{
				{ID: "kale", Name: "Kale", Price: 3, Rating: 3.5, Category: "leafy"},
			},
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	_, err := New([]Group{
		{Name: "a", Products: []Product{{ID: "x", Name: "one"}}},
		{Name: "b", Products: []Product{{ID: "x", Name: "two"}}},
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewRejectsEmptyGroupName(t *testing.T) {
	t.Parallel()

	_, err := New([]Group{{Name: "  ", Products: []Product{{ID: "x"}}}})
	if err == nil {
		t.Fatal("expected empty group name error")
	}
}

func TestNewRejectsNegativePrice(t *testing.T) {
	t.Parallel()

	_, err := New([]Group{{Name: "a", Products: []Product{{ID: "x", Price: -1}}}})
	if err == nil {
		t.Fatal("expected negative price error")
	}
}

func TestProductsPreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	c := fixtureCatalog(t)
	got := c.Products()
	wantIDs := []string{"apple", "mango", "kale"}
	if len(got) != len(wantIDs) {
		t.Fatalf("Products() len = %d, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("Products()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestDefaultCatalogComplete(t *testing.T) {
	t.Parallel()

	c := Default()
	got := c.Products()
	if len(got) != 12 {
		t.Fatalf("Default().Products() len = %d, want 12", len(got))
	}

	seen := make(map[string]bool, len(got))
	for _, p := range got {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}

	if got[0].ID != "iphone15" {
		t.Fatalf("first product = %q, want iphone15", got[0].ID)
	}
	if got[len(got)-1].ID != "cookbook" {
		t.Fatalf("last product = %q, want cookbook", got[len(got)-1].ID)
	}
}

func TestProductByID(t *testing.T) {
	t.Parallel()

	c := Default()
	p, err := c.Product("iphone15")
	if err != nil {
		t.Fatalf("Product() error = %v", err)
	}
	if p.Name != "iPhone 15 Pro" {
		t.Fatalf("Product().Name = %q, want %q", p.Name, "iPhone 15 Pro")
	}
}

func TestProductByIDNotFound(t *testing.T) {
	t.Parallel()

	c := Default()
	_, err := c.Product("no-such-id")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("Product() error = %v, want ErrProductNotFound", err)
	}
}

func TestGroupNamesOrdered(t *testing.T) {
	t.Parallel()

	c := Default()
	got := c.GroupNames()
	want := []string{"electronics", "clothing", "home", "books"}
	if len(got) != len(want) {
		t.Fatalf("GroupNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GroupNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
