package models

import "time"

type Order struct {
	ID               string      `json:"id"`
	SessionID        string      `json:"session_id"`
	CustomerName     string      `json:"customer_name"`
	Source           string      `json:"source,omitempty"`
	Items            []OrderItem `json:"items"`
	TotalPrice       int         `json:"total_price"`
	AdjustmentAmount int         `json:"adjustment_amount"`
	Note             string      `json:"note,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
	IsPaid           bool        `json:"is_paid"`
	PaymentMethod    string      `json:"payment_method,omitempty"`
	PaymentDate      *time.Time  `json:"payment_date,omitempty"`
}

// CustomerSources adalah pilihan asal pembeli di form pencatatan pesanan.
var CustomerSources = []string{
	"GURU SLBN 9",
	"ORTU SLBN 9",
	"MURID SLBN 9",
	"KELUARGA",
	"TEMAN",
	"LAINNYA",
}
