package models

// OrderItem menyimpan nama dan harga menu pada saat order dibuat,
// sehingga perubahan katalog setelahnya tidak mengubah riwayat.
type OrderItem struct {
	MenuID       string `json:"menu_id"`
	MenuName     string `json:"menu_name"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder int    `json:"price_at_order"`
}
