// Package menu provides the static catalog of orderable items.
package menu

import (
	"strings"

	"github.com/gourmetdelight/diner/internal/models"
)

// Catalog is a fixed, read-only set of menu items. Lookups match item names
// case-insensitively; listings group items by category in display order.
type Catalog struct {
	items  []models.MenuItem
	byName map[string]models.MenuItem // keyed by lower-cased name
}

// New builds a catalog from the given items. Later items win on duplicate
// names. The catalog never changes after construction.
func New(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items:  make([]models.MenuItem, len(items)),
		byName: make(map[string]models.MenuItem, len(items)),
	}
	copy(c.items, items)
	for _, item := range items {
		c.byName[strings.ToLower(item.Name)] = item
	}
	return c
}

// Default returns the standard restaurant menu.
func Default() *Catalog {
	return New([]models.MenuItem{
		{Name: "Garlic Bread", Category: models.CategoryStarters, Price: 5.00},
		{Name: "Soup of the Day", Category: models.CategoryStarters, Price: 6.50},

		{Name: "Grilled Chicken", Category: models.CategoryMains, Price: 15.00},
		{Name: "Veggie Pasta", Category: models.CategoryMains, Price: 13.50},
		{Name: "Beef Burger", Category: models.CategoryMains, Price: 16.00},

		{Name: "Chocolate Cake", Category: models.CategoryDesserts, Price: 7.00},
		{Name: "Ice Cream", Category: models.CategoryDesserts, Price: 5.50},

		{Name: "Soft Drink", Category: models.CategoryDrinks, Price: 3.00},
		{Name: "Coffee", Category: models.CategoryDrinks, Price: 4.00},

		{Name: "Chef's Seasonal Dish", Category: models.CategorySeasonal, Price: 18.50},
	})
}

// Lookup finds an item by name, ignoring case. The second return value
// reports whether the item exists; not-found is a normal outcome.
func (c *Catalog) Lookup(name string) (models.MenuItem, bool) {
	item, ok := c.byName[strings.ToLower(name)]
	return item, ok
}

// Items returns the catalog grouped by category in display order. Within a
// category, items keep their construction order. The returned slice is a
// copy.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.items))
	for _, cat := range models.CategoryOrder {
		for _, item := range c.items {
			if item.Category == cat {
				out = append(out, item)
			}
		}
	}
	return out
}

// Len reports the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
