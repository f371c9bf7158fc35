// Package favorites is the shopper's saved-products membership set.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pasarumkm/umkm-market/internal/catalog"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
)

// Set keeps liked products unique by product id, in insertion order.
type Set struct {
	owner    string
	kv       kvstore.Store
	products []catalog.Product
}

// Open loads the favorites container; missing or malformed data loads as
// an empty set.
func Open(ctx context.Context, kv kvstore.Store, ownerID string) (*Set, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	s := &Set{owner: ownerID, kv: kv}

	raw, err := kv.Get(ctx, kvstore.ScopedKey(ownerID, kvstore.KeyFavorites))
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &s.products)
	}
	return s, nil
}

func (s *Set) save(ctx context.Context) error {
	products := s.products
	if products == nil {
		products = []catalog.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.ScopedKey(s.owner, kvstore.KeyFavorites), raw); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// Add is idempotent: a product already in the set is left as is.
func (s *Set) Add(ctx context.Context, p catalog.Product) error {
	if !s.Contains(p.ID) {
		s.products = append(s.products, p)
	}
	return s.save(ctx)
}

// Remove drops the product if present, no-op otherwise.
func (s *Set) Remove(ctx context.Context, productID string) error {
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return s.save(ctx)
}

// Contains reports membership by product id.
func (s *Set) Contains(productID string) bool {
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Products returns a copy of the set in insertion order.
func (s *Set) Products() []catalog.Product {
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}
