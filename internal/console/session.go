// Package console runs the interactive line-oriented ordering session.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gourmetdelight/diner/internal/calculator"
	"github.com/gourmetdelight/diner/internal/menu"
	"github.com/gourmetdelight/diner/internal/order"
	"github.com/gourmetdelight/diner/internal/receipt"
)

const (
	maxQuantity = 3

	tokenDone = "done"
	tokenMenu = "menu"
)

// Session drives one ordering session: a prompt loop over item names and
// quantities, optional service charge and tip prompts, and a final receipt.
// Input and output are injectable so the session is testable without a
// terminal.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *menu.Catalog
	taxRate float64
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, catalog *menu.Catalog) *Session {
	return &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: catalog,
		taxRate: calculator.DefaultTaxRate,
	}
}

// Run executes the full ordering flow and prints the receipt. Input running
// out ends the loop the same way the "done" token does.
func (s *Session) Run() error {
	ord := order.New()

	s.printMenu()

	for {
		s.printf("\nWhat would you like to order? (Enter item name or 'done' to finish)\n")
		s.printf("Item: ")
		input, ok := s.readLine()
		if !ok || strings.EqualFold(input, tokenDone) {
			break
		}

		if strings.EqualFold(input, tokenMenu) {
			s.printMenu()
			continue
		}

		item, found := s.catalog.Lookup(input)
		if !found {
			s.printf("Item not found. Please enter a valid item name.\n")
			continue
		}

		quantity, ok := s.readQuantity()
		if !ok {
			break
		}

		if quantity > 0 {
			ord.SetQuantity(item.Name, quantity)
			s.printf("%d x %s added to your order.\n", quantity, item.Name)
		} else {
			ord.Remove(item.Name)
			s.printf("%s removed from your order.\n", item.Name)
		}

		s.printCurrentOrder(ord)
	}

	s.askExtras(ord)

	bill, err := calculator.ComputeBill(ord, s.catalog, s.taxRate)
	if err != nil {
		return fmt.Errorf("compute bill: %w", err)
	}

	s.printf("\n\n%s", receipt.Render(ord, s.catalog, bill, s.taxRate))
	return nil
}

// readQuantity prompts until it gets an integer in [0, maxQuantity].
// The second return value is false when input runs out.
func (s *Session) readQuantity() (int, bool) {
	for {
		s.printf("Quantity (0-%d, 0 to remove): ", maxQuantity)
		input, ok := s.readLine()
		if !ok {
			return 0, false
		}

		quantity, err := strconv.Atoi(input)
		if err != nil {
			s.printf("Please enter a valid number.\n")
			continue
		}
		if quantity < 0 || quantity > maxQuantity {
			s.printf("Please enter a number between 0 and %d.\n", maxQuantity)
			continue
		}
		return quantity, true
	}
}

// askExtras runs the optional service charge and tip prompts. Malformed or
// negative numbers leave the charge at zero.
func (s *Session) askExtras(ord *order.Order) {
	s.printf("\nAdd service charge? (y/n): ")
	if s.readYes() {
		s.printf("Service charge percentage (e.g., 10 for 10%%): ")
		if pct, ok := s.readAmount(); ok {
			ord.ServiceChargePercent = pct
		} else {
			s.printf("Invalid input. No service charge added.\n")
		}
	}

	s.printf("\nAdd tip? (y/n): ")
	if s.readYes() {
		s.printf("Tip amount (in dollars): ")
		if tip, ok := s.readAmount(); ok {
			ord.TipAmount = tip
		} else {
			s.printf("Invalid input. No tip added.\n")
		}
	}
}

func (s *Session) readYes() bool {
	input, ok := s.readLine()
	return ok && strings.EqualFold(input, "y")
}

func (s *Session) readAmount() (float64, bool) {
	input, ok := s.readLine()
	if !ok {
		return 0, false
	}
	amount, err := strconv.ParseFloat(input, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printMenu() {
	s.printf("\n========== MENU ==========\n")
	for _, category := range s.categories() {
		s.printf("\n%s:\n", category)
		for _, item := range s.catalog.Items() {
			if string(item.Category) == category {
				s.printf("  %-20s $%.2f\n", item.Name, item.Price)
			}
		}
	}
	s.printf("==========================\n")
}

func (s *Session) categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range s.catalog.Items() {
		if !seen[string(item.Category)] {
			seen[string(item.Category)] = true
			out = append(out, string(item.Category))
		}
	}
	return out
}

func (s *Session) printCurrentOrder(ord *order.Order) {
	if ord.Empty() {
		s.printf("\nYour order is currently empty.\n")
		return
	}

	s.printf("\nCurrent Order:\n")
	s.printf("-------------------\n")
	for _, line := range calculator.Lines(ord, s.catalog) {
		s.printf("%s x%d - $%.2f\n", line.Name, line.Quantity, line.LineTotal)
	}
	s.printf("-------------------\n")
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
