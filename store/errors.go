package store

import (
	"errors"
	"fmt"
)

var (
	ErrNoActiveSession    = errors.New("tidak ada periode PO yang sedang buka")
	ErrSessionAlreadyOpen = errors.New("masih ada periode PO yang terbuka")
	ErrEmptyCart          = errors.New("belum ada menu dipilih")
	ErrNotFound           = errors.New("data tidak ditemukan")
)

// ValidationError menandai field wajib yang kosong atau nilai yang tidak valid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// InsufficientStockError membawa menu yang gagal divalidasi beserta sisa stok.
type InsufficientStockError struct {
	MenuID    string
	MenuName  string
	Requested int
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s tidak cukup (diminta %d, sisa %d)", e.MenuName, e.Requested, e.Remaining)
}
