package database

import (
	"time"

	"github.com/yeremiapane/frozen-po-app/models"
)

// Data seed dipakai saat pertama kali jalan atau saat snapshot tersimpan
// gagal dibaca. Isinya katalog awal usaha frozen food.

func SeedMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Ekkado (Pack isi 10)", Price: 35000, Stock: 20, IsActive: true},
		{ID: "2", Name: "Lumpia Ayam (Pack isi 8)", Price: 25000, Stock: 15, IsActive: true},
		{ID: "3", Name: "Nugget Homemade (500g)", Price: 40000, Stock: 10, IsActive: true},
	}
}

func SeedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "default-1",
			Title:       "Adonan Dasar (Ekkado/Nugget)",
			YieldInfo:   "Adonan Jadi: ± 7.8 kg (± 50 pack)",
			LastUpdated: time.Now(),
			Ingredients: `Daging & Gilingan:
- Dada Polos 3 kg (Giling halus)
- Paha Polos 1 kg (Giling halus)
- Kulit Ayam 0.5 kg (Giling halus)
- Paha Polos 1 kg (Giling sedang)
> Aduk Rata semua daging

Campuran Bumbu (Larutkan + Aduk):
- Minyak Wijen 90 ml
- Kecap Ikan 30 ml
- Kecap Asin 75 ml
- Saori 30 ml
- Minyak Bawang 90 ml
- Air Es 150 ml
- Kaldu Jamur 30 g
- Garam 15 g
- Lada 60 g
- Sasa 45 g
- Royco Ayam 2 sachet
- Masako Sapi 2 sachet
- Gula 30 g
- Bawang Putih Goreng 75 g

Tepung & Pengikat:
- Baking Powder 30 g
- Tepung Sagutani 500 g
- Tepung Maizena 200 g
- Telur Putih 300 g (kocok) (+ telur ayam 1/2 kg)

Tumisan (Campuran):
- Daun Bawang 1/4 kg (10rb)
- Wortel 1/2 kg
- Bombay 1 buah (besar)
- Daun Kucai (4 ikat - khusus ekado)

Lain-lain:
- Telur Puyuh
- Tepung Roti (cooper)
- Minyak 1 L
- Terigu Segitiga`,
		},
	}
}

func SeedIngredients() []models.Ingredient {
	now := time.Now()
	return []models.Ingredient{
		{ID: "i1", Name: "Dada Ayam Polos", Stock: 5, Unit: "kg", LastUpdated: now},
		{ID: "i2", Name: "Tepung Sagutani", Stock: 2, Unit: "kg", LastUpdated: now},
		{ID: "i3", Name: "Minyak Wijen", Stock: 500, Unit: "ml", LastUpdated: now},
		{ID: "i4", Name: "Kulit Tahu", Stock: 50, Unit: "lembar", LastUpdated: now},
	}
}

// SeedState membangun state awal lengkap dengan ledger dan sesi kosong.
func SeedState() models.AppState {
	return models.AppState{
		Menu:        SeedMenu(),
		Recipes:     SeedRecipes(),
		Ingredients: SeedIngredients(),
	}
}
