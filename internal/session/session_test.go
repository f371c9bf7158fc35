package session_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasarumkm/umkm-market/internal/catalog"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
	"github.com/pasarumkm/umkm-market/internal/orders"
	"github.com/pasarumkm/umkm-market/internal/session"
)

func TestShoppingFlow(t *testing.T) {
	ctx := t.Context()
	kv := kvstore.NewMemory()
	owner := gofakeit.UUID()

	sess, err := session.Open(ctx, kv, owner, orders.Options{ValidateTransitions: true})
	require.NoError(t, err)

	batik, ok := catalog.Find("p-001")
	require.True(t, ok)
	tas, ok := catalog.Find("p-002")
	require.True(t, ok)
	gudeg, ok := catalog.Find("p-003")
	require.True(t, ok)

	// makanan is rejected at the door
	require.Error(t, sess.Cart.Add(ctx, gudeg, 1, ""))

	require.NoError(t, sess.Cart.Add(ctx, batik, 2, ""))
	require.NoError(t, sess.Cart.Add(ctx, tas, 1, ""))
	require.Equal(t, batik.Price*2+tas.Price, sess.Cart.Total())

	require.NoError(t, sess.Favorites.Add(ctx, batik))

	pickup := time.Now().Add(24 * time.Hour)
	orderID, err := sess.Checkout(ctx, batik.StoreID, batik.StoreName, &pickup)
	require.NoError(t, err)

	// checkout leaves the cart alone; clearing is a separate decision
	require.Equal(t, 3, sess.Cart.ItemCount())
	require.NoError(t, sess.Cart.Clear(ctx))

	o, ok := sess.Orders.Get(orderID)
	require.True(t, ok)
	assert.Equal(t, orders.StatusPending, o.Status)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, batik.Price*2+tas.Price, o.TotalAmount)
	assert.False(t, orders.PickupTimeReached(o.PickupTime))

	// everything survives a fresh session over the same backend
	reloaded, err := session.Open(ctx, kv, owner, orders.Options{ValidateTransitions: true})
	require.NoError(t, err)

	assert.Empty(t, reloaded.Cart.Lines())
	assert.True(t, reloaded.Favorites.Contains(batik.ID))
	assert.Empty(t, cmp.Diff(sess.Orders.Orders(), reloaded.Orders.Orders()))
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := t.Context()

	sess, err := session.Open(ctx, kvstore.NewMemory(), gofakeit.UUID(), orders.Options{})
	require.NoError(t, err)

	_, err = sess.Checkout(ctx, "s-1", "Toko", nil)
	require.Error(t, err)
	assert.Empty(t, sess.Orders.Orders())
}
