// Package receipt renders orders and bills as fixed-width receipt text.
package receipt

import (
	"fmt"
	"strings"

	"github.com/gourmetdelight/diner/internal/calculator"
	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/order"
)

const (
	lineWidth      = 38
	restaurantName = "GOURMET DELIGHT"
	closingLine    = "Thank you for your order!"
)

// Render produces the formatted receipt for an order and its computed bill.
// It is pure: writing the text to stdout or an HTTP response is the caller's
// concern. Order entries the catalog cannot resolve are omitted from the
// body; the service charge and tip lines appear only when set.
func Render(o *order.Order, catalog calculator.Catalog, bill models.Bill, taxRate float64) string {
	var b strings.Builder

	rule := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center(restaurantName) + "\n")
	b.WriteString(rule + "\n")

	for _, line := range calculator.Lines(o, catalog) {
		fmt.Fprintf(&b, "%-20s x%-2d  $%6.2f\n", line.Name, line.Quantity, line.LineTotal)
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-28s $%6.2f\n", "Subtotal", bill.Subtotal)
	fmt.Fprintf(&b, "%-28s $%6.2f\n", fmt.Sprintf("Tax (%.0f%%)", taxRate*100), bill.TaxAmount)
	if bill.ServiceChargeAmount > 0 {
		label := fmt.Sprintf("Service Charge (%.1f%%)", o.ServiceChargePercent)
		fmt.Fprintf(&b, "%-28s $%6.2f\n", label, bill.ServiceChargeAmount)
	}
	if bill.TipAmount > 0 {
		fmt.Fprintf(&b, "%-28s $%6.2f\n", "Tip", bill.TipAmount)
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-28s $%6.2f\n", "TOTAL", bill.Total)
	b.WriteString(rule + "\n")
	b.WriteString(center(closingLine) + "\n")
	b.WriteString(rule + "\n")

	return b.String()
}

// center pads text with spaces so it sits centered in the receipt width,
// floor-dividing the remainder to the left.
func center(text string) string {
	padding := (lineWidth - len(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}
