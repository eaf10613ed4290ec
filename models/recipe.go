package models

import "time"

// Recipe adalah catatan resep bebas, murni teks.
type Recipe struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	YieldInfo   string    `json:"yield_info"`
	Ingredients string    `json:"ingredients"`
	LastUpdated time.Time `json:"last_updated"`
}
