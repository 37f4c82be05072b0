// Package calculator computes bills from accumulated orders.
package calculator

import (
	"fmt"

	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/order"
)

// DefaultTaxRate is the tax rate applied when the caller has no override,
// expressed as a fraction (0.13 = 13%).
const DefaultTaxRate = 0.13

// Catalog resolves item names to menu items. Not-found is a normal outcome.
type Catalog interface {
	Lookup(name string) (models.MenuItem, bool)
}

// ComputeBill computes the monetary breakdown for an order:
//
//	subtotal = sum of price x quantity over resolvable lines
//	tax      = subtotal x taxRate
//	service  = subtotal x (serviceChargePercent / 100), when set
//	total    = subtotal + tax + service + tip
//
// Order entries whose names the catalog cannot resolve contribute nothing;
// they are skipped, not an error. An empty order yields a zero bill plus any
// tip that was set. ComputeBill is pure and deterministic.
func ComputeBill(o *order.Order, catalog Catalog, taxRate float64) (models.Bill, error) {
	if taxRate < 0 {
		return models.Bill{}, fmt.Errorf("tax rate cannot be negative: %v", taxRate)
	}
	if o.ServiceChargePercent < 0 {
		return models.Bill{}, fmt.Errorf("service charge cannot be negative: %v", o.ServiceChargePercent)
	}
	if o.TipAmount < 0 {
		return models.Bill{}, fmt.Errorf("tip cannot be negative: %v", o.TipAmount)
	}

	var subtotal float64
	for _, entry := range o.Items() {
		item, ok := catalog.Lookup(entry.Name)
		if !ok {
			continue
		}
		subtotal += item.Price * float64(entry.Quantity)
	}

	bill := models.Bill{
		Subtotal:  subtotal,
		TaxAmount: subtotal * taxRate,
		TipAmount: o.TipAmount,
	}
	if o.ServiceChargePercent > 0 {
		bill.ServiceChargeAmount = subtotal * (o.ServiceChargePercent / 100)
	}
	bill.Total = bill.Subtotal + bill.TaxAmount + bill.ServiceChargeAmount + bill.TipAmount

	return bill, nil
}

// Lines resolves an order's entries against the catalog in insertion order.
// Entries the catalog cannot resolve are omitted.
func Lines(o *order.Order, catalog Catalog) []models.LineItem {
	lines := make([]models.LineItem, 0, len(o.Items()))
	for _, entry := range o.Items() {
		item, ok := catalog.Lookup(entry.Name)
		if !ok {
			continue
		}
		lines = append(lines, models.LineItem{
			Name:      item.Name,
			Category:  item.Category,
			Price:     item.Price,
			Quantity:  entry.Quantity,
			LineTotal: item.Price * float64(entry.Quantity),
		})
	}
	return lines
}
