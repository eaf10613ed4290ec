package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/yeremiapane/frozen-po-app/models"
)

// Menu mengembalikan salinan seluruh katalog.
func (s *Store) Menu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, len(s.state.Menu))
	copy(out, s.state.Menu)
	return out
}

// ActiveMenu mengembalikan menu yang sedang diaktifkan saja.
func (s *Store) ActiveMenu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.MenuItem
	for _, m := range s.state.Menu {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

func validateMenuFields(name string, price, stock int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "wajib diisi"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Reason: "tidak boleh negatif"}
	}
	if stock < 0 {
		return &ValidationError{Field: "stock", Reason: "tidak boleh negatif"}
	}
	return nil
}

// AddMenuItem menambah menu baru; menu baru langsung aktif.
func (s *Store) AddMenuItem(name string, price, stock int, description string) (models.MenuItem, error) {
	if err := validateMenuFields(name, price, stock); err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.MenuItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Price:       price,
		Stock:       stock,
		Description: description,
		IsActive:    true,
	}
	s.state.Menu = append(s.state.Menu, item)
	return item, nil
}

// UpdateMenuItem mengubah nama, harga, dan stok. Flag aktif tidak disentuh.
func (s *Store) UpdateMenuItem(id, name string, price, stock int, description string) (models.MenuItem, error) {
	if err := validateMenuFields(name, price, stock); err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Menu {
		if s.state.Menu[i].ID == id {
			s.state.Menu[i].Name = strings.TrimSpace(name)
			s.state.Menu[i].Price = price
			s.state.Menu[i].Stock = stock
			s.state.Menu[i].Description = description
			return s.state.Menu[i], nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (s *Store) DeleteMenuItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Menu {
		if s.state.Menu[i].ID == id {
			s.state.Menu = append(s.state.Menu[:i], s.state.Menu[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ToggleMenuActive(id string) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Menu {
		if s.state.Menu[i].ID == id {
			s.state.Menu[i].IsActive = !s.state.Menu[i].IsActive
			return s.state.Menu[i], nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

// SetMenuStock mengganti stok ke nilai absolut (koreksi manual dari layar menu).
func (s *Store) SetMenuStock(id string, stock int) (models.MenuItem, error) {
	if stock < 0 {
		return models.MenuItem{}, &ValidationError{Field: "stock", Reason: "tidak boleh negatif"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Menu {
		if s.state.Menu[i].ID == id {
			s.state.Menu[i].Stock = stock
			return s.state.Menu[i], nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}
