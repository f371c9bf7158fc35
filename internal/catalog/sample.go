package catalog

// Sample is the built-in demo catalog used by marketctl when no external
// catalog source is configured. Mirrors the storefront seed data.
func Sample() []Product {
	return []Product{
		{
			ID: "p-001", Name: "Batik Tulis Pekalongan", Category: CategoryFashion,
			Price: 250000, Rating: 4.8,
			StoreID: "s-001", StoreName: "Batik Cantik",
			Description: "Batik tulis motif klasik, pewarna alami.",
		},
		{
			ID: "p-002", Name: "Tas Rajut Handmade", Category: CategoryKerajinan,
			Price: 85000, Rating: 4.6,
			StoreID: "s-002", StoreName: "Rajut Ibu Sari",
			Description: "Tas rajut benang nilon, kuat dan ringan.",
		},
		{
			ID: "p-003", Name: "Nasi Gudeg Komplit", Category: CategoryMakanan,
			Price: 25000, Rating: 4.9,
			StoreID: "s-003", StoreName: "Warung Bu Tini",
			Description: "Gudeg jogja, pesan langsung via WhatsApp.",
		},
		{
			ID: "p-004", Name: "Es Teh Serai", Category: CategoryMinuman,
			Price: 8000, Rating: 4.5,
			StoreID: "s-003", StoreName: "Warung Bu Tini",
			Description: "Minuman segar, hanya tersedia di toko.",
		},
		{
			ID: "p-005", Name: "Lampu Hias Bambu", Category: CategoryKerajinan,
			Price: 120000, Rating: 4.7,
			StoreID: "s-002", StoreName: "Rajut Ibu Sari",
			Description: "Lampu meja anyaman bambu.",
		},
		{
			ID: "p-006", Name: "Kaos Sablon Lokal", Category: CategoryFashion,
			Price: 65000, Rating: 4.4,
			StoreID: "s-001", StoreName: "Batik Cantik",
			Description: "Kaos katun 24s sablon plastisol.",
		},
	}
}

// Find looks a product up by id in the sample catalog.
func Find(id string) (Product, bool) {
	for _, p := range Sample() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
