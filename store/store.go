package store

import (
	"sync"

	"github.com/yeremiapane/frozen-po-app/models"
)

// Store memegang seluruh state aplikasi di memori. Semua mutasi berjalan
// serial; mutex hanya menjaga handler HTTP yang masuk bersamaan.
type Store struct {
	mu    sync.Mutex
	state models.AppState
}

func New(state models.AppState) *Store {
	return &Store{state: state}
}

// State mengembalikan salinan snapshot untuk ditulis oleh persistence adapter.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot menyalin slice level atas. Isi Order (termasuk Items) tidak pernah
// dimutasi setelah dibuat, jadi aman dibagikan.
func (s *Store) snapshot() models.AppState {
	out := models.AppState{
		Menu:        make([]models.MenuItem, len(s.state.Menu)),
		Orders:      make([]models.Order, len(s.state.Orders)),
		Sessions:    make([]models.POSession, len(s.state.Sessions)),
		Recipes:     make([]models.Recipe, len(s.state.Recipes)),
		Ingredients: make([]models.Ingredient, len(s.state.Ingredients)),
	}
	copy(out.Menu, s.state.Menu)
	copy(out.Orders, s.state.Orders)
	copy(out.Sessions, s.state.Sessions)
	copy(out.Recipes, s.state.Recipes)
	copy(out.Ingredients, s.state.Ingredients)
	return out
}
