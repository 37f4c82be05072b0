// Package order accumulates a diner's item selections for one session.
package order

// Entry is one accumulated order line: an item name and a positive quantity.
type Entry struct {
	Name     string
	Quantity int
}

// Order is a mutable mapping of item name to quantity, preserving the order
// in which items were first added so receipts list them consistently.
// Quantities are always positive; setting a quantity to zero or below
// removes the entry. Order also carries the optional service charge and tip.
//
// An Order is used by a single session at a time and is not safe for
// concurrent use.
type Order struct {
	names      []string
	quantities map[string]int

	// ServiceChargePercent is the optional service charge as a percentage
	// of the subtotal (10 means 10%). Zero means none.
	ServiceChargePercent float64

	// TipAmount is the optional flat tip. Zero means none.
	TipAmount float64
}

// New returns an empty order.
func New() *Order {
	return &Order{quantities: make(map[string]int)}
}

// SetQuantity inserts or overwrites the entry for name. A quantity of zero
// or below removes the entry instead; removing an absent entry is a no-op.
// Overwriting keeps the entry's original position.
func (o *Order) SetQuantity(name string, quantity int) {
	if quantity <= 0 {
		o.Remove(name)
		return
	}
	if _, exists := o.quantities[name]; !exists {
		o.names = append(o.names, name)
	}
	o.quantities[name] = quantity
}

// Remove deletes the entry for name if present.
func (o *Order) Remove(name string) {
	if _, exists := o.quantities[name]; !exists {
		return
	}
	delete(o.quantities, name)
	for i, n := range o.names {
		if n == name {
			o.names = append(o.names[:i], o.names[i+1:]...)
			break
		}
	}
}

// Quantity returns the quantity for name, or zero if absent.
func (o *Order) Quantity(name string) int {
	return o.quantities[name]
}

// Items returns a snapshot of the accumulated entries in insertion order.
func (o *Order) Items() []Entry {
	entries := make([]Entry, 0, len(o.names))
	for _, name := range o.names {
		entries = append(entries, Entry{Name: name, Quantity: o.quantities[name]})
	}
	return entries
}

// Empty reports whether the order has no entries.
func (o *Order) Empty() bool {
	return len(o.names) == 0
}
