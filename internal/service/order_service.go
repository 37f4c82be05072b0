package service

import (
	"log/slog"

	"github.com/gourmetdelight/diner/internal/calculator"
	"github.com/gourmetdelight/diner/internal/menu"
	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/order"
)

// OrderService turns requested quantities into a computed receipt.
// The web and console paths share the same bill calculation.
type OrderService struct {
	catalog *menu.Catalog
	taxRate float64
}

// NewOrderService creates an OrderService over the given catalog using the
// default tax rate.
func NewOrderService(catalog *menu.Catalog) *OrderService {
	return &OrderService{catalog: catalog, taxRate: calculator.DefaultTaxRate}
}

// PlaceOrder builds an order from the requested quantities and computes its
// bill. Entries with non-positive quantities or names the catalog cannot
// resolve are silently dropped. Line items follow catalog display order so
// responses are deterministic.
func (s *OrderService) PlaceOrder(quantities map[string]int) (*models.Receipt, error) {
	// Resolve request keys to canonical catalog names first, summing
	// quantities when several keys alias the same item case-insensitively,
	// so the result never depends on map iteration order.
	merged := make(map[string]int, len(quantities))
	for name, qty := range quantities {
		if qty <= 0 {
			continue
		}
		if item, ok := s.catalog.Lookup(name); ok {
			merged[item.Name] += qty
		}
	}

	ord := order.New()
	// Walk the catalog so line items follow display order.
	for _, item := range s.catalog.Items() {
		if qty, ok := merged[item.Name]; ok {
			ord.SetQuantity(item.Name, qty)
		}
	}

	bill, err := calculator.ComputeBill(ord, s.catalog, s.taxRate)
	if err != nil {
		slog.Error("Failed to compute bill", "error", err)
		return nil, err
	}

	receipt := &models.Receipt{
		Items:   calculator.Lines(ord, s.catalog),
		TaxRate: s.taxRate,
		Bill:    bill,
	}
	slog.Info("Order placed",
		"lines", len(receipt.Items),
		"subtotal", bill.Subtotal,
		"total", bill.Total,
	)
	return receipt, nil
}
