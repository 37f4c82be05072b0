package models

import "time"

// Drawing is a saved canvas drawing from the drawing-pad frontend.
// Drawings are created on save and read or deleted by ID; they are never
// updated in place.
type Drawing struct {
	// ID is the unique identifier for the drawing (UUID format).
	// Assigned by the store on save.
	ID string `json:"id"`

	// Name is the user-provided name of the drawing.
	Name string `json:"name"`

	// DataURL is the encoded image payload. Must begin with "data:image".
	DataURL string `json:"dataUrl"`

	// Format is the image format the canvas exported (e.g. "png").
	Format string `json:"format"`

	// Width and Height are the canvas dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// CreatedDate is when the drawing was saved. Set by the store.
	CreatedDate time.Time `json:"createdDate"`
}
