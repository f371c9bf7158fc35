// Package orders is the append-mostly order ledger: orders are created
// from cart snapshots, never deleted, and only their status moves.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pasarumkm/umkm-market/internal/cart"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
)

// ErrIllegalTransition rejects a status update outside validNext when the
// ledger runs with ValidateTransitions.
var ErrIllegalTransition = errors.New("illegal status transition")

const orderIDPrefix = "ORD-"

// Options tune the two behaviors the storefront left to its callers.
type Options struct {
	// ValidateTransitions makes UpdateStatus reject edges outside the
	// state machine instead of overwriting blindly. Off reproduces the
	// original permissive behavior (administrative override).
	ValidateTransitions bool

	// ProofUpgradeOnly stops a payment proof from forcing an order that
	// is already ready/completed/cancelled back to confirmed; the proof
	// is still recorded. Off reproduces the original force-to-confirmed.
	ProofUpgradeOnly bool
}

// Ledger owns the order container for one shopper, newest order first.
// Like the cart, it is single-session: exactly one writer.
type Ledger struct {
	owner  string
	kv     kvstore.Store
	opts   Options
	orders []Order
	seq    int
}

// OpenLedger loads the shopper's orders. Missing or malformed persisted
// data loads as an empty ledger.
func OpenLedger(ctx context.Context, kv kvstore.Store, ownerID string, opts Options) (*Ledger, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	l := &Ledger{owner: ownerID, kv: kv, opts: opts}

	raw, err := kv.Get(ctx, kvstore.ScopedKey(ownerID, kvstore.KeyOrders))
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &l.orders)
	}
	return l, nil
}

func (l *Ledger) save(ctx context.Context) error {
	orders := l.orders
	if orders == nil {
		orders = []Order{}
	}
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := l.kv.Set(ctx, kvstore.ScopedKey(l.owner, kvstore.KeyOrders), raw); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (l *Ledger) exists(id string) bool {
	for _, o := range l.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// nextID derives the order id from the creation time, like the
// storefront's ORD-<millis>. Same-millisecond creations get a bumped
// sequence suffix so ids stay unique within the session.
func (l *Ledger) nextID(now time.Time) string {
	id := fmt.Sprintf("%s%d", orderIDPrefix, now.UnixMilli())
	for l.exists(id) {
		l.seq++
		id = fmt.Sprintf("%s%d-%d", orderIDPrefix, now.UnixMilli(), l.seq)
	}
	return id
}

// Create snapshots the given lines into a new pending order and prepends
// it to the ledger. The snapshot is independent of the live cart: mutate
// the cart afterwards and the order keeps what was checked out. Creating
// an order does not clear the cart; that stays the caller's decision.
func (l *Ledger) Create(ctx context.Context, storeID, storeName string, items []cart.Line, pickupTime *time.Time) (string, error) {
	snapshot := make([]cart.Line, len(items))
	copy(snapshot, items)

	now := time.Now()
	o := Order{
		ID:          l.nextID(now),
		StoreID:     storeID,
		StoreName:   storeName,
		Items:       snapshot,
		TotalAmount: cart.Sum(snapshot),
		Status:      StatusPending,
		CreatedAt:   now,
	}
	if pickupTime != nil {
		t := *pickupTime
		o.PickupTime = &t
	}

	l.orders = append([]Order{o}, l.orders...)
	if err := l.save(ctx); err != nil {
		return "", err
	}
	return o.ID, nil
}

// Get is a pure lookup by order id.
func (l *Ledger) Get(orderID string) (Order, bool) {
	for _, o := range l.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return Order{}, false
}

// Orders returns a copy of the ledger, newest first.
func (l *Ledger) Orders() []Order {
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// UpdateStatus moves an order to next. Returns false without error for
// an unknown id. With ValidateTransitions set, edges outside validNext
// fail with ErrIllegalTransition and the order is left unchanged.
func (l *Ledger) UpdateStatus(ctx context.Context, orderID string, next Status) (bool, error) {
	for i := range l.orders {
		if l.orders[i].ID != orderID {
			continue
		}
		if l.opts.ValidateTransitions && !CanTransition(l.orders[i].Status, next) {
			return false, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, l.orders[i].Status, next)
		}
		l.orders[i].Status = next
		if err := l.save(ctx); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// UploadPaymentProof records the proof reference and marks the order
// confirmed. Returns false without error for an unknown id. With
// ProofUpgradeOnly set, only a pending order moves to confirmed; a more
// advanced (or cancelled) order keeps its status and just gets the proof.
func (l *Ledger) UploadPaymentProof(ctx context.Context, orderID, proofRef string) (bool, error) {
	for i := range l.orders {
		if l.orders[i].ID != orderID {
			continue
		}
		l.orders[i].PaymentProof = proofRef
		if !l.opts.ProofUpgradeOnly || l.orders[i].Status == StatusPending {
			l.orders[i].Status = StatusConfirmed
		}
		if err := l.save(ctx); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
