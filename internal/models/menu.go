package models

// Category identifies a section of the menu.
type Category string

// Menu categories in their fixed display order.
const (
	CategoryStarters Category = "Starters"
	CategoryMains    Category = "Main Courses"
	CategoryDesserts Category = "Desserts"
	CategoryDrinks   Category = "Drinks"
	CategorySeasonal Category = "Seasonal"
)

// CategoryOrder is the order categories appear on menus and listings.
var CategoryOrder = []Category{
	CategoryStarters,
	CategoryMains,
	CategoryDesserts,
	CategoryDrinks,
	CategorySeasonal,
}

// MenuItem is a single orderable item on the menu.
type MenuItem struct {
	// Name uniquely identifies the item within a catalog.
	// Lookups match it case-insensitively.
	Name string `json:"name"`

	// Category is the menu section the item belongs to.
	Category Category `json:"category"`

	// Price is the pre-tax price of one unit. Never negative.
	Price float64 `json:"price"`
}
