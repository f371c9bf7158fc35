// Package session bundles the three state containers of one shopper.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/pasarumkm/umkm-market/internal/cart"
	"github.com/pasarumkm/umkm-market/internal/favorites"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
	"github.com/pasarumkm/umkm-market/internal/orders"
)

// Session is the engine surface the UI layer talks to: one cart, one
// favorites set and one order ledger, all persisting through the same
// adapter under the same owner scope.
type Session struct {
	OwnerID   string
	Cart      *cart.Store
	Favorites *favorites.Set
	Orders    *orders.Ledger
}

// Open loads all three containers for the shopper.
func Open(ctx context.Context, kv kvstore.Store, ownerID string, opts orders.Options) (*Session, error) {
	c, err := cart.Open(ctx, kv, ownerID)
	if err != nil {
		return nil, fmt.Errorf("cart.Open: %w", err)
	}
	f, err := favorites.Open(ctx, kv, ownerID)
	if err != nil {
		return nil, fmt.Errorf("favorites.Open: %w", err)
	}
	l, err := orders.OpenLedger(ctx, kv, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("orders.OpenLedger: %w", err)
	}

	return &Session{OwnerID: ownerID, Cart: c, Favorites: f, Orders: l}, nil
}

// Checkout snapshots the current cart into a new order for the given
// store and returns the order id. The cart is intentionally not cleared
// here; the storefront decides when to empty it.
func (s *Session) Checkout(ctx context.Context, storeID, storeName string, pickupTime *time.Time) (string, error) {
	lines := s.Cart.Lines()
	if len(lines) == 0 {
		return "", fmt.Errorf("keranjang kosong")
	}
	return s.Orders.Create(ctx, storeID, storeName, lines, pickupTime)
}
