package kvstore

import "fmt"

// Container keys. Each holds one JSON document with the full container.
const (
	KeyCart      = "cart"
	KeyFavorites = "favorites"
	KeyOrders    = "orders"
)

// Scoped key per shopper: umkm:{owner}:{container}
const keyScoped = "umkm:%s:%s"

// ScopedKey namespaces a container key to one shopper so several owners
// can share a backend without clashing.
func ScopedKey(ownerID, key string) string {
	return fmt.Sprintf(keyScoped, ownerID, key)
}
