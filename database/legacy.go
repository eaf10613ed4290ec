package database

import (
	"time"

	"github.com/yeremiapane/frozen-po-app/models"
)

// LegacySessionID adalah id sesi sintetis yang menampung semua order lama.
const LegacySessionID = "legacy-session"

// Skema v1: satu flag isPOOpen tanpa konsep sesi, field camelCase,
// timestamp epoch milidetik. Didecode secara terpisah lalu ditransform
// eksplisit — tidak ada pencampuran field dua skema.
type legacyState struct {
	IsPOOpen bool             `json:"isPOOpen"`
	Menu     []legacyMenuItem `json:"menu"`
	Orders   []legacyOrder    `json:"orders"`
}

type legacyMenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Stock    int    `json:"stock"`
	IsActive *bool  `json:"isActive"`
}

type legacyOrderItem struct {
	MenuID       string `json:"menuId"`
	MenuName     string `json:"menuName"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder int    `json:"priceAtOrder"`
}

type legacyOrder struct {
	ID               string            `json:"id"`
	CustomerName     string            `json:"customerName"`
	Source           string            `json:"source"`
	Items            []legacyOrderItem `json:"items"`
	TotalPrice       int               `json:"totalPrice"`
	Note             string            `json:"note"`
	AdjustmentAmount *int              `json:"adjustmentAmount"`
	Timestamp        int64             `json:"timestamp"`
	IsPaid           *bool             `json:"isPaid"`
	PaymentMethod    string            `json:"paymentMethod"`
	PaymentDate      *int64            `json:"paymentDate"`
}

// migrateLegacy mensintesis satu sesi untuk seluruh riwayat lama dan
// mengisi default field yang belum ada di skema v1.
func migrateLegacy(old legacyState) models.AppState {
	now := time.Now()
	status := models.SessionClosed
	if old.IsPOOpen {
		status = models.SessionOpen
	}
	session := models.POSession{
		ID:        LegacySessionID,
		Name:      "Riwayat Lama (Migrasi)",
		StartDate: now,
		EndDate:   &now,
		Status:    status,
	}

	menu := SeedMenu()
	if len(old.Menu) > 0 {
		menu = make([]models.MenuItem, 0, len(old.Menu))
		for _, m := range old.Menu {
			active := true
			if m.IsActive != nil {
				active = *m.IsActive
			}
			menu = append(menu, models.MenuItem{
				ID:       m.ID,
				Name:     m.Name,
				Price:    m.Price,
				Stock:    m.Stock,
				IsActive: active,
			})
		}
	}

	orders := make([]models.Order, 0, len(old.Orders))
	for _, o := range old.Orders {
		items := make([]models.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, models.OrderItem{
				MenuID:       it.MenuID,
				MenuName:     it.MenuName,
				Quantity:     it.Quantity,
				PriceAtOrder: it.PriceAtOrder,
			})
		}

		isPaid := false
		if o.IsPaid != nil {
			isPaid = *o.IsPaid
		}
		adjustment := 0
		if o.AdjustmentAmount != nil {
			adjustment = *o.AdjustmentAmount
		}
		var paymentDate *time.Time
		if o.PaymentDate != nil {
			t := time.UnixMilli(*o.PaymentDate)
			paymentDate = &t
		}

		orders = append(orders, models.Order{
			ID:               o.ID,
			SessionID:        LegacySessionID,
			CustomerName:     o.CustomerName,
			Source:           o.Source,
			Items:            items,
			TotalPrice:       o.TotalPrice,
			AdjustmentAmount: adjustment,
			Note:             o.Note,
			Timestamp:        time.UnixMilli(o.Timestamp),
			IsPaid:           isPaid,
			PaymentMethod:    o.PaymentMethod,
			PaymentDate:      paymentDate,
		})
	}

	return models.AppState{
		Menu:        menu,
		Orders:      orders,
		Sessions:    []models.POSession{session},
		Recipes:     SeedRecipes(),
		Ingredients: SeedIngredients(),
	}
}
