package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/frozen-po-app/models"
)

func (s *Store) Recipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recipe, len(s.state.Recipes))
	copy(out, s.state.Recipes)
	return out
}

func (s *Store) AddRecipe(title, yieldInfo, ingredients string) (models.Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return models.Recipe{}, &ValidationError{Field: "title", Reason: "wajib diisi"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := models.Recipe{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		YieldInfo:   yieldInfo,
		Ingredients: ingredients,
		LastUpdated: time.Now(),
	}
	s.state.Recipes = append(s.state.Recipes, recipe)
	return recipe, nil
}

func (s *Store) UpdateRecipe(id, title, yieldInfo, ingredients string) (models.Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return models.Recipe{}, &ValidationError{Field: "title", Reason: "wajib diisi"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == id {
			s.state.Recipes[i].Title = strings.TrimSpace(title)
			s.state.Recipes[i].YieldInfo = yieldInfo
			s.state.Recipes[i].Ingredients = ingredients
			s.state.Recipes[i].LastUpdated = time.Now()
			return s.state.Recipes[i], nil
		}
	}
	return models.Recipe{}, ErrNotFound
}

func (s *Store) DeleteRecipe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == id {
			s.state.Recipes = append(s.state.Recipes[:i], s.state.Recipes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
