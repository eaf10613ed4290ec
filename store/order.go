package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/frozen-po-app/models"
)

// CartEntry adalah satu baris keranjang: menu dan jumlah yang diminta.
type CartEntry struct {
	MenuID   string `json:"menu_id"`
	Quantity int    `json:"quantity"`
}

// OrderInput adalah isi form pencatatan pesanan. Note dan AdjustmentAmount
// hanya dipakai bila toggle masing-masing menyala; teks/nilai yang terlanjur
// diisi tanpa toggle dibuang saat submit.
type OrderInput struct {
	CustomerName     string
	Source           string
	Items            []CartEntry
	Note             string
	NoteActive       bool
	AdjustmentAmount int
	AdjustmentActive bool
}

// Orders mengembalikan seluruh ledger, terbaru di depan.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.state.Orders))
	copy(out, s.state.Orders)
	return out
}

// Order mencari satu order berdasarkan id.
func (s *Store) Order(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.findOrder(id); o != nil {
		return *o, nil
	}
	return models.Order{}, ErrNotFound
}

func (s *Store) findOrder(id string) *models.Order {
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == id {
			return &s.state.Orders[i]
		}
	}
	return nil
}

// SubmitOrder memvalidasi keranjang terhadap stok katalog, memotong stok,
// dan mencatat order baru — semua atau tidak sama sekali. Validasi berjalan
// di salinan katalog; katalog asli baru diganti setelah semua baris lolos.
func (s *Store) SubmitOrder(in OrderInput) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, open := s.activeSession()
	if !open {
		return models.Order{}, ErrNoActiveSession
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return models.Order{}, &ValidationError{Field: "customer_name", Reason: "wajib diisi"}
	}
	if len(in.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	working := make([]models.MenuItem, len(s.state.Menu))
	copy(working, s.state.Menu)

	var items []models.OrderItem
	subtotal := 0
	for _, entry := range in.Items {
		if entry.Quantity < 1 {
			return models.Order{}, &ValidationError{Field: "quantity", Reason: "minimal 1"}
		}

		idx := -1
		for i := range working {
			if working[i].ID == entry.MenuID {
				idx = i
				break
			}
		}
		if idx == -1 {
			// Menu sudah dihapus dari katalog: baris dilewati, bukan error.
			continue
		}

		if working[idx].Stock < entry.Quantity {
			return models.Order{}, &InsufficientStockError{
				MenuID:    working[idx].ID,
				MenuName:  working[idx].Name,
				Requested: entry.Quantity,
				Remaining: working[idx].Stock,
			}
		}

		working[idx].Stock -= entry.Quantity
		items = append(items, models.OrderItem{
			MenuID:       working[idx].ID,
			MenuName:     working[idx].Name,
			Quantity:     entry.Quantity,
			PriceAtOrder: working[idx].Price,
		})
		subtotal += working[idx].Price * entry.Quantity
	}

	adjustment := 0
	if in.AdjustmentActive {
		adjustment = in.AdjustmentAmount
	}
	note := ""
	if in.NoteActive {
		note = in.Note
	}

	order := models.Order{
		ID:               uuid.NewString(),
		SessionID:        active.ID,
		CustomerName:     strings.TrimSpace(in.CustomerName),
		Source:           in.Source,
		Items:            items,
		TotalPrice:       subtotal + adjustment,
		AdjustmentAmount: adjustment,
		Note:             note,
		Timestamp:        time.Now(),
		IsPaid:           false,
	}

	s.state.Menu = working
	s.state.Orders = append([]models.Order{order}, s.state.Orders...)
	return order, nil
}

// TogglePaid membalik status bayar. Transisi pertama ke lunas mencap tanggal
// bayar; membatalkan status lunas tidak menghapus tanggal yang sudah tercap.
func (s *Store) TogglePaid(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.findOrder(orderID)
	if o == nil {
		return models.Order{}, ErrNotFound
	}

	o.IsPaid = !o.IsPaid
	if o.IsPaid && o.PaymentDate == nil {
		now := time.Now()
		o.PaymentDate = &now
	}
	return *o, nil
}

// SetPaymentMethod memilih label pembayaran dari daftar tetap.
func (s *Store) SetPaymentMethod(orderID, method string) (models.Order, error) {
	if !models.IsValidPaymentMethod(method) {
		return models.Order{}, &ValidationError{Field: "payment_method", Reason: "tidak dikenal"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.findOrder(orderID)
	if o == nil {
		return models.Order{}, ErrNotFound
	}
	o.PaymentMethod = method
	return *o, nil
}

// SetPaymentDate menimpa tanggal bayar dengan nilai dari user.
func (s *Store) SetPaymentDate(orderID string, date time.Time) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.findOrder(orderID)
	if o == nil {
		return models.Order{}, ErrNotFound
	}
	o.PaymentDate = &date
	return *o, nil
}

// ResetOrders mengosongkan seluruh ledger.
func (s *Store) ResetOrders() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Orders = nil
}
