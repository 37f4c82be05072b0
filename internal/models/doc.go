// Package models defines the core domain types for the diner apps.
//
// # Models
//
//   - MenuItem: a fixed, orderable item on the menu
//   - Bill: the computed monetary breakdown for an order
//   - LineItem / Receipt: resolved order lines and the web order response
//   - Drawing: a saved canvas drawing (drawing-pad API)
//
// # Design Principles
//
//  1. Models are passive data; behavior lives in menu, order, calculator,
//     receipt and the service layer.
//  2. MenuItem values are immutable once a catalog is built.
//  3. Bill is derived data and is never mutated after computation.
package models
