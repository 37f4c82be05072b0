package api

import "net/http"

// GetMenu handles GET /api/menu, returning the catalog in display order.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Items())
}

// PlaceOrder handles POST /order. The body maps item names to requested
// quantities; non-positive quantities and unknown names are dropped. The
// response is the receipt with resolved lines and the computed bill.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var quantities map[string]int
	if err := decodeJSON(w, r, &quantities); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.orders.PlaceOrder(quantities)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
