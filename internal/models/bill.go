package models

// Bill is the computed monetary breakdown for an order.
// All fields are non-negative and Total is always the exact sum of the
// other four.
type Bill struct {
	// Subtotal is the sum of price x quantity over all resolvable order lines.
	Subtotal float64 `json:"subtotal"`

	// TaxAmount is Subtotal scaled by the tax rate supplied at computation time.
	TaxAmount float64 `json:"taxAmount"`

	// ServiceChargeAmount is Subtotal scaled by the order's service charge
	// percentage; zero when no service charge was requested.
	ServiceChargeAmount float64 `json:"serviceChargeAmount"`

	// TipAmount is the flat tip carried over from the order.
	TipAmount float64 `json:"tipAmount"`

	// Total is Subtotal + TaxAmount + ServiceChargeAmount + TipAmount.
	Total float64 `json:"total"`
}

// LineItem is one resolved order entry: a catalog item plus the quantity
// ordered and the resulting line total.
type LineItem struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	LineTotal float64  `json:"lineTotal"`
}

// Receipt is the web order response: the resolved line items together with
// the tax rate used and the computed bill.
type Receipt struct {
	Items   []LineItem `json:"items"`
	TaxRate float64    `json:"taxRate"`
	Bill    Bill       `json:"bill"`
}
