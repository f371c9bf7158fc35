// Package cart holds the shopper's pending selection and the business
// rules on what may enter it.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pasarumkm/umkm-market/internal/catalog"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
)

// ErrRestrictedCategory rejects makanan/minuman: keduanya hanya bisa
// dipesan langsung via WhatsApp atau datang ke toko.
var ErrRestrictedCategory = errors.New("produk makanan dan minuman tidak bisa dipesan online")

// Line is one product entry in the cart. At most one line exists per
// product id, and Quantity is always >= 1 while the line is present.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// Sum is the rupiah total of a set of lines.
func Sum(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Product.Price * int64(l.Quantity)
	}
	return total
}

// Store owns the cart container for one shopper. Every mutation writes
// the whole container back through the persistence adapter. A Store is
// owned by a single session; it does no locking of its own.
type Store struct {
	owner string
	kv    kvstore.Store
	lines []Line
}

// Open loads the shopper's cart. A missing or malformed persisted value
// loads as an empty cart, never as an error.
func Open(ctx context.Context, kv kvstore.Store, ownerID string) (*Store, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	s := &Store{owner: ownerID, kv: kv}

	raw, err := kv.Get(ctx, kvstore.ScopedKey(ownerID, kvstore.KeyCart))
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines []Line
	if len(raw) > 0 && json.Unmarshal(raw, &lines) == nil {
		for _, l := range lines {
			if l.Quantity >= 1 {
				s.lines = append(s.lines, l)
			}
		}
	}
	return s, nil
}

func (s *Store) save(ctx context.Context) error {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.ScopedKey(s.owner, kvstore.KeyCart), raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Add puts quantity units of a product into the cart. If a line for the
// product already exists its quantity grows and its notes are replaced
// (last write wins). Restricted categories are rejected and the cart is
// left untouched. A quantity below 1 counts as 1.
func (s *Store) Add(ctx context.Context, p catalog.Product, quantity int, notes string) error {
	if p.Category.Restricted() {
		return fmt.Errorf("%w: %s", ErrRestrictedCategory, p.Category)
	}
	if quantity < 1 {
		quantity = 1
	}

	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += quantity
			s.lines[i].Notes = notes
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{Product: p, Quantity: quantity, Notes: notes})
	}
	return s.save(ctx)
}

// Remove drops the line for productID; removing an absent id is a no-op
// that still persists the (unchanged) container.
func (s *Store) Remove(ctx context.Context, productID string) error {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	return s.save(ctx)
}

// SetQuantity sets the line's quantity to an absolute value. Zero or
// negative removes the line; an unknown id is a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	return s.save(ctx)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = nil
	return s.save(ctx)
}

// Total is the rupiah sum over all lines, 0 for an empty cart.
func (s *Store) Total() int64 { return Sum(s.lines) }

// ItemCount is the summed quantity over all lines.
func (s *Store) ItemCount() int {
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}
