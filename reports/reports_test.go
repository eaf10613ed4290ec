package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/frozen-po-app/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID: "o1", SessionID: "s1", IsPaid: true, TotalPrice: 50000,
			PaymentMethod: models.PaymentMethodCash,
			Items: []models.OrderItem{
				{MenuID: "m1", MenuName: "Ekkado", Quantity: 2, PriceAtOrder: 25000},
			},
		},
		{
			ID: "o2", SessionID: "s1", IsPaid: false, TotalPrice: 30000,
			Items: []models.OrderItem{
				{MenuID: "m2", MenuName: "Lumpia", Quantity: 1, PriceAtOrder: 30000},
			},
		},
		{
			ID: "o3", SessionID: "s2", IsPaid: true, TotalPrice: 75000,
			PaymentMethod: "TF BNI",
			Items: []models.OrderItem{
				{MenuID: "m1", MenuName: "Ekkado", Quantity: 3, PriceAtOrder: 25000},
			},
		},
	}
}

func TestFilter(t *testing.T) {
	orders := sampleOrders()

	assert.Len(t, Filter(orders, "", ""), 3)
	assert.Len(t, Filter(orders, FilterAll, FilterAll), 3)
	assert.Len(t, Filter(orders, "s1", ""), 2)
	assert.Len(t, Filter(orders, "s1", FilterPaid), 1)
	assert.Len(t, Filter(orders, "", FilterUnpaid), 1)
	assert.Empty(t, Filter(orders, "s3", ""))
}

func TestRevenueSplitsByPaidFlag(t *testing.T) {
	sum := Revenue(sampleOrders())

	assert.Equal(t, 125000, sum.Received)
	assert.Equal(t, 30000, sum.Pending)
	assert.Equal(t, 155000, sum.Potential)
	assert.Equal(t, 2, sum.PaidCount)
	assert.Equal(t, 1, sum.UnpaidCount)
}

func TestItemRankingAggregatesAcrossOrders(t *testing.T) {
	ranking := ItemRanking(sampleOrders())

	assert.Len(t, ranking, 2)
	assert.Equal(t, "m1", ranking[0].MenuID)
	assert.Equal(t, 5, ranking[0].Quantity)
	assert.Equal(t, 125000, ranking[0].Subtotal)
	assert.Equal(t, "m2", ranking[1].MenuID)

	assert.Equal(t, 6, TotalItemsSold(ranking))
}

func TestItemRankingTieKeepsFirstAppearance(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{MenuID: "a", MenuName: "A", Quantity: 3, PriceAtOrder: 1000}}},
		{Items: []models.OrderItem{{MenuID: "b", MenuName: "B", Quantity: 5, PriceAtOrder: 1000}}},
		{Items: []models.OrderItem{{MenuID: "a", MenuName: "A", Quantity: 2, PriceAtOrder: 1000}}},
	}

	ranking := ItemRanking(orders)
	assert.Len(t, ranking, 2)
	// Seri 5 vs 5: A muncul lebih dulu, jadi tetap di atas
	assert.Equal(t, "a", ranking[0].MenuID)
	assert.Equal(t, 5, ranking[0].Quantity)
	assert.Equal(t, "b", ranking[1].MenuID)
	assert.Equal(t, 5, ranking[1].Quantity)
}

func TestBalanceSeparatesCashAndTransfer(t *testing.T) {
	sum := Balance(sampleOrders())

	assert.Equal(t, 125000, sum.TotalRevenue)
	assert.Equal(t, 2, sum.TotalTransactions)
	assert.Equal(t, 50000, sum.CashTotal)
	assert.Equal(t, 1, sum.CashCount)
	assert.Equal(t, 75000, sum.TransferTotal)
	assert.Equal(t, 1, sum.TransferCount)

	assert.Len(t, sum.Breakdown, 1)
	assert.Equal(t, "TF BNI", sum.Breakdown[0].Method)
	assert.Equal(t, 75000, sum.Breakdown[0].Total)
}

func TestBalancePaidWithoutMethodGoesToUnknown(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", IsPaid: true, TotalPrice: 10000},
		{ID: "o2", IsPaid: true, TotalPrice: 20000, PaymentMethod: models.PaymentMethodCash},
	}

	sum := Balance(orders)
	assert.Equal(t, 30000, sum.TotalRevenue)
	assert.Equal(t, 0, sum.TransferTotal)
	assert.Equal(t, 20000, sum.CashTotal)

	assert.Len(t, sum.Breakdown, 1)
	assert.Equal(t, UnknownMethodLabel, sum.Breakdown[0].Method)
	assert.Equal(t, 10000, sum.Breakdown[0].Total)
	assert.Equal(t, 1, sum.Breakdown[0].Count)
}

func TestStockWarnings(t *testing.T) {
	menu := []models.MenuItem{
		{ID: "m1", Name: "Ekkado", Stock: 0, IsActive: true},
		{ID: "m2", Name: "Lumpia", Stock: 3, IsActive: true},
		{ID: "m3", Name: "Nugget", Stock: 10, IsActive: true},
		{ID: "m4", Name: "Risoles", Stock: 0, IsActive: false},
	}

	sum := StockWarnings(menu)
	assert.Len(t, sum.OutOfStock, 1)
	assert.Equal(t, "m1", sum.OutOfStock[0].ID)
	assert.Len(t, sum.LowStock, 1)
	assert.Equal(t, "m2", sum.LowStock[0].ID)
}
