package models

// CartLine is one product in a cart with the quantity and the display
// fields snapshotted at add time. A later price change on the product
// does not touch existing lines.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}
