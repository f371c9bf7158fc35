package catalog

// Category is the product category tag as shown in the storefront.
type Category string

const (
	CategoryMakanan    Category = "Makanan"
	CategoryMinuman    Category = "Minuman"
	CategoryFashion    Category = "Fashion"
	CategoryKerajinan  Category = "Kerajinan"
	CategoryElektronik Category = "Elektronik"
	CategoryJasa       Category = "Jasa"
)

// Makanan/minuman hanya bisa dipesan langsung (WhatsApp / datang ke toko),
// bukan lewat keranjang online.
var restricted = map[Category]bool{
	CategoryMakanan: true,
	CategoryMinuman: true,
}

// Restricted reports whether products of this category may not enter the
// online cart.
func (c Category) Restricted() bool { return restricted[c] }

// Product is immutable reference data owned by the catalog; the state
// engine reads it but never mutates it.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"` // rupiah, no subunits
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	StoreID     string   `json:"store_id"`
	StoreName   string   `json:"store_name"`
	Description string   `json:"description,omitempty"`
}

// Store is the physical shop a product belongs to.
type Store struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address,omitempty"`
	WhatsApp string  `json:"whatsapp,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
}
