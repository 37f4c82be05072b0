package receipt

import (
	"strings"
	"testing"

	"github.com/gourmetdelight/diner/internal/calculator"
	"github.com/gourmetdelight/diner/internal/menu"
	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/order"
)

func testCatalog() *menu.Catalog {
	return menu.New([]models.MenuItem{
		{Name: "Garlic Bread", Category: models.CategoryStarters, Price: 5.00},
		{Name: "Grilled Chicken", Category: models.CategoryMains, Price: 15.00},
	})
}

func TestRenderFullReceipt(t *testing.T) {
	o := order.New()
	o.SetQuantity("Garlic Bread", 2)
	o.SetQuantity("Grilled Chicken", 1)
	o.ServiceChargePercent = 10
	o.TipAmount = 5

	cat := testCatalog()
	bill, err := calculator.ComputeBill(o, cat, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill failed: %v", err)
	}

	got := Render(o, cat, bill, 0.13)

	rule := strings.Repeat("-", 38)
	want := strings.Join([]string{
		rule,
		"           GOURMET DELIGHT",
		rule,
		"Garlic Bread         x2   $ 10.00",
		"Grilled Chicken      x1   $ 15.00",
		rule,
		"Subtotal                     $ 25.00",
		"Tax (13%)                    $  3.25",
		"Service Charge (10.0%)       $  2.50",
		"Tip                          $  5.00",
		rule,
		"TOTAL                        $ 35.75",
		rule,
		"      Thank you for your order!",
		rule,
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderOmitsOptionalLines(t *testing.T) {
	o := order.New()
	o.SetQuantity("Garlic Bread", 1)

	cat := testCatalog()
	bill, err := calculator.ComputeBill(o, cat, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill failed: %v", err)
	}

	got := Render(o, cat, bill, 0.13)

	if strings.Contains(got, "Service Charge") {
		t.Error("service charge line should be omitted when zero")
	}
	if strings.Contains(got, "Tip") {
		t.Error("tip line should be omitted when zero")
	}
}

func TestRenderSkipsUnresolvableItems(t *testing.T) {
	o := order.New()
	o.SetQuantity("Garlic Bread", 1)
	o.SetQuantity("Mystery Dish", 2)

	cat := testCatalog()
	bill, err := calculator.ComputeBill(o, cat, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill failed: %v", err)
	}

	got := Render(o, cat, bill, 0.13)

	if strings.Contains(got, "Mystery Dish") {
		t.Error("unresolvable item should be omitted from the receipt body")
	}
	if !strings.Contains(got, "Garlic Bread") {
		t.Error("resolvable item missing from receipt body")
	}
}

func TestRenderEmptyOrder(t *testing.T) {
	o := order.New()

	cat := testCatalog()
	bill, err := calculator.ComputeBill(o, cat, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill failed: %v", err)
	}

	got := Render(o, cat, bill, 0.13)

	if !strings.Contains(got, "TOTAL                        $  0.00") {
		t.Errorf("empty order should render a zero total, got:\n%s", got)
	}
}
