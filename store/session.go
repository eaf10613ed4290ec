package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeremiapane/frozen-po-app/models"
)

// Sessions mengembalikan semua periode PO, terbaru di depan.
func (s *Store) Sessions() []models.POSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.POSession, len(s.state.Sessions))
	copy(out, s.state.Sessions)
	return out
}

// ActiveSession mengembalikan sesi yang berstatus OPEN, bila ada.
func (s *Store) ActiveSession() (models.POSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSession()
}

func (s *Store) activeSession() (models.POSession, bool) {
	for _, sess := range s.state.Sessions {
		if sess.Status == models.SessionOpen {
			return sess, true
		}
	}
	return models.POSession{}, false
}

// StartSession membuka periode PO baru. Ditolak bila masih ada yang terbuka.
// Nama kosong memakai nama default dari urutan sesi dan tanggal hari ini.
func (s *Store) StartSession(name string) (models.POSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, open := s.activeSession(); open {
		return models.POSession{}, ErrSessionAlreadyOpen
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("PO #%d (%s)", len(s.state.Sessions)+1, time.Now().Format("02/01/2006"))
	}

	session := models.POSession{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: time.Now(),
		Status:    models.SessionOpen,
	}
	s.state.Sessions = append([]models.POSession{session}, s.state.Sessions...)
	return session, nil
}

// CloseSession menutup sesi OPEN dan mencap waktu selesai.
// Bila tidak ada yang terbuka, tidak ada yang berubah.
func (s *Store) CloseSession() (models.POSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Sessions {
		if s.state.Sessions[i].Status == models.SessionOpen {
			now := time.Now()
			s.state.Sessions[i].Status = models.SessionClosed
			s.state.Sessions[i].EndDate = &now
			return s.state.Sessions[i], true
		}
	}
	return models.POSession{}, false
}
