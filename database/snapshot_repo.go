package database

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/frozen-po-app/models"
)

const (
	// SnapshotKey adalah nama dokumen skema berjalan.
	SnapshotKey = "frozen-food-app-v2"
	// LegacySnapshotKey adalah nama dokumen skema lama (sebelum ada sesi PO).
	LegacySnapshotKey = "frozen-food-app-v1"
)

// ErrSnapshotCorrupt menandakan dokumen tersimpan gagal di-decode.
// Pemanggil melanjutkan dengan data seed; ini bukan kondisi fatal.
var ErrSnapshotCorrupt = errors.New("snapshot tersimpan tidak bisa dibaca")

// Snapshot adalah satu baris key-value: nama dokumen -> JSON state penuh.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

type SnapshotRepo struct {
	DB *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) *SnapshotRepo {
	return &SnapshotRepo{DB: db}
}

// Save menulis seluruh state sebagai satu dokumen JSON di bawah SnapshotKey.
func (r *SnapshotRepo) Save(state models.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	snap := Snapshot{Key: SnapshotKey, Value: string(raw), UpdatedAt: time.Now()}
	return r.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap).Error
}

// Load memulihkan state dengan pola versioned loader: coba skema berjalan,
// lalu skema lama (dengan transform eksplisit), lalu seed. Error yang
// dikembalikan hanya untuk dicatat; state hasil selalu bisa dipakai.
func (r *SnapshotRepo) Load() (models.AppState, error) {
	var snap Snapshot
	err := r.DB.First(&snap, "key = ?", SnapshotKey).Error
	if err == nil {
		var state models.AppState
		if jerr := json.Unmarshal([]byte(snap.Value), &state); jerr != nil {
			return SeedState(), ErrSnapshotCorrupt
		}
		return fillDefaults(state), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SeedState(), err
	}
	return r.loadLegacy()
}

func (r *SnapshotRepo) loadLegacy() (models.AppState, error) {
	var snap Snapshot
	err := r.DB.First(&snap, "key = ?", LegacySnapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SeedState(), nil
	}
	if err != nil {
		return SeedState(), err
	}

	var old legacyState
	if jerr := json.Unmarshal([]byte(snap.Value), &old); jerr != nil {
		return SeedState(), ErrSnapshotCorrupt
	}
	return migrateLegacy(old), nil
}

// fillDefaults mengisi bagian yang kosong pada dokumen lama yang valid,
// mis. dokumen dari versi sebelum ada buku resep.
func fillDefaults(state models.AppState) models.AppState {
	if state.Menu == nil {
		state.Menu = SeedMenu()
	}
	if len(state.Recipes) == 0 {
		state.Recipes = SeedRecipes()
	}
	if state.Ingredients == nil {
		state.Ingredients = SeedIngredients()
	}
	return state
}
