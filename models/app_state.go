package models

// AppState adalah seluruh data aplikasi yang diserialisasi sebagai satu
// dokumen snapshot oleh persistence adapter.
type AppState struct {
	Menu        []MenuItem   `json:"menu"`
	Orders      []Order      `json:"orders"`
	Sessions    []POSession  `json:"sessions"`
	Recipes     []Recipe     `json:"recipes"`
	Ingredients []Ingredient `json:"ingredients"`
}
