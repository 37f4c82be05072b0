package menu

import (
	"testing"

	"github.com/gourmetdelight/diner/internal/models"
)

func TestLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name      string
		query     string
		wantFound bool
		wantName  string
	}{
		{name: "exact match", query: "Garlic Bread", wantFound: true, wantName: "Garlic Bread"},
		{name: "case-insensitive match", query: "gArLiC bReAd", wantFound: true, wantName: "Garlic Bread"},
		{name: "unknown item", query: "Lobster", wantFound: false},
		{name: "empty name", query: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, found := c.Lookup(tt.query)
			if found != tt.wantFound {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.query, found, tt.wantFound)
			}
			if found && item.Name != tt.wantName {
				t.Errorf("Lookup(%q) name = %q, want %q", tt.query, item.Name, tt.wantName)
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10", c.Len())
	}

	chicken, found := c.Lookup("Grilled Chicken")
	if !found {
		t.Fatal("expected Grilled Chicken in default catalog")
	}
	if chicken.Price != 15.00 {
		t.Errorf("Grilled Chicken price = %v, want 15.00", chicken.Price)
	}
	if chicken.Category != models.CategoryMains {
		t.Errorf("Grilled Chicken category = %v, want %v", chicken.Category, models.CategoryMains)
	}
}

func TestItemsGroupedByCategory(t *testing.T) {
	// Construct out of display order on purpose.
	c := New([]models.MenuItem{
		{Name: "Coffee", Category: models.CategoryDrinks, Price: 4.00},
		{Name: "Chef's Seasonal Dish", Category: models.CategorySeasonal, Price: 18.50},
		{Name: "Garlic Bread", Category: models.CategoryStarters, Price: 5.00},
		{Name: "Beef Burger", Category: models.CategoryMains, Price: 16.00},
	})

	items := c.Items()
	want := []string{"Garlic Bread", "Beef Burger", "Coffee", "Chef's Seasonal Dish"}

	if len(items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestDuplicateNamesLastWins(t *testing.T) {
	c := New([]models.MenuItem{
		{Name: "Coffee", Category: models.CategoryDrinks, Price: 4.00},
		{Name: "coffee", Category: models.CategoryDrinks, Price: 4.50},
	})

	item, found := c.Lookup("COFFEE")
	if !found {
		t.Fatal("expected coffee to resolve")
	}
	if item.Price != 4.50 {
		t.Errorf("price = %v, want 4.50 (later entry wins)", item.Price)
	}
}
