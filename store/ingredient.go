package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/frozen-po-app/models"
)

func (s *Store) Ingredients() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ingredient, len(s.state.Ingredients))
	copy(out, s.state.Ingredients)
	return out
}

func validateIngredientFields(name, unit string, stock float64) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "wajib diisi"}
	}
	if strings.TrimSpace(unit) == "" {
		return &ValidationError{Field: "unit", Reason: "wajib diisi"}
	}
	if stock < 0 {
		return &ValidationError{Field: "stock", Reason: "tidak boleh negatif"}
	}
	return nil
}

func (s *Store) AddIngredient(name string, stock float64, unit string) (models.Ingredient, error) {
	if err := validateIngredientFields(name, unit, stock); err != nil {
		return models.Ingredient{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing := models.Ingredient{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Stock:       stock,
		Unit:        strings.TrimSpace(unit),
		LastUpdated: time.Now(),
	}
	s.state.Ingredients = append(s.state.Ingredients, ing)
	return ing, nil
}

func (s *Store) UpdateIngredient(id, name string, stock float64, unit string) (models.Ingredient, error) {
	if err := validateIngredientFields(name, unit, stock); err != nil {
		return models.Ingredient{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Ingredients {
		if s.state.Ingredients[i].ID == id {
			s.state.Ingredients[i].Name = strings.TrimSpace(name)
			s.state.Ingredients[i].Stock = stock
			s.state.Ingredients[i].Unit = strings.TrimSpace(unit)
			s.state.Ingredients[i].LastUpdated = time.Now()
			return s.state.Ingredients[i], nil
		}
	}
	return models.Ingredient{}, ErrNotFound
}

func (s *Store) DeleteIngredient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Ingredients {
		if s.state.Ingredients[i].ID == id {
			s.state.Ingredients = append(s.state.Ingredients[:i], s.state.Ingredients[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AdjustIngredientStock menambah/mengurangi stok dengan lantai nol.
// LastUpdated tetap dicap walau clamp membuat nilainya tidak berubah.
func (s *Store) AdjustIngredientStock(id string, delta float64) (models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Ingredients {
		if s.state.Ingredients[i].ID == id {
			newStock := s.state.Ingredients[i].Stock + delta
			if newStock < 0 {
				newStock = 0
			}
			s.state.Ingredients[i].Stock = newStock
			s.state.Ingredients[i].LastUpdated = time.Now()
			return s.state.Ingredients[i], nil
		}
	}
	return models.Ingredient{}, ErrNotFound
}
