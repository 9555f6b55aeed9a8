package models

import "time"

// ProductRecord is a read-only row from the product catalog. Price and
// Rating come from a hosted table whose historical rows are not always
// clean, so both use the lenient Number type instead of float64.
type ProductRecord struct {
	ID     string `json:"productId"`
	Title  string `json:"title"`
	Price  Number `json:"price"`
	Image  string `json:"image,omitempty"`
	Link   string `json:"link,omitempty"`
	Rating Number `json:"rating,omitempty"`
}

// CartSession groups one batch of recommended results. It is not a
// shopping-cart contents store; only the identifier matters downstream.
type CartSession struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"created_at"`
}
