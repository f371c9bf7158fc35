package orders

import (
	"time"

	"github.com/pasarumkm/umkm-market/internal/cart"
)

// Order is a checkout-time snapshot of cart lines plus a mutable
// lifecycle status. Everything except Status and PaymentProof is set once
// at creation and never changes.
type Order struct {
	ID           string      `json:"id"`
	StoreID      string      `json:"store_id"`
	StoreName    string      `json:"store_name"`
	Items        []cart.Line `json:"items"`
	TotalAmount  int64       `json:"total_amount"`
	Status       Status      `json:"status"`
	PickupTime   *time.Time  `json:"pickup_time,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	PaymentProof string      `json:"payment_proof,omitempty"`
}
