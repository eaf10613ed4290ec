package models

import "time"

const (
	SessionOpen   = "OPEN"
	SessionClosed = "CLOSED"
)

// POSession merepresentasikan satu periode pre-order.
// Maksimal satu sesi berstatus OPEN pada satu waktu.
type POSession struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    string     `json:"status"`
}
