package models

import "time"

// Ingredient adalah stok bahan baku. Tidak terkait struktural dengan
// MenuItem maupun Recipe; stok boleh pecahan (mis. 0.5 kg).
type Ingredient struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Stock       float64   `json:"stock"`
	Unit        string    `json:"unit"`
	LastUpdated time.Time `json:"last_updated"`
}
