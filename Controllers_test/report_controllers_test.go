package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/frozen-po-app/controllers"
	"github.com/yeremiapane/frozen-po-app/models"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

func setupReportRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	reportCtrl := controllers.NewReportController(st)
	router.GET("/reports/dashboard", reportCtrl.GetDashboard)
	router.GET("/reports/balance", reportCtrl.GetBalance)
	return router
}

func reportTestState() models.AppState {
	now := time.Now()
	paid := now.Add(-time.Hour)
	return models.AppState{
		Menu: []models.MenuItem{
			{ID: "m1", Name: "Ekkado", Price: 35000, Stock: 0, IsActive: true},
			{ID: "m2", Name: "Lumpia", Price: 25000, Stock: 3, IsActive: true},
		},
		Sessions: []models.POSession{
			{ID: "s1", Name: "PO #1", StartDate: now, Status: models.SessionOpen},
		},
		Orders: []models.Order{
			{
				ID: "o1", SessionID: "s1", CustomerName: "Bu Rina",
				Items:      []models.OrderItem{{MenuID: "m1", MenuName: "Ekkado", Quantity: 2, PriceAtOrder: 35000}},
				TotalPrice: 70000, Timestamp: now,
				IsPaid: true, PaymentMethod: models.PaymentMethodCash, PaymentDate: &paid,
			},
			{
				ID: "o2", SessionID: "s1", CustomerName: "Pak Budi",
				Items:      []models.OrderItem{{MenuID: "m2", MenuName: "Lumpia", Quantity: 1, PriceAtOrder: 25000}},
				TotalPrice: 25000, Timestamp: now,
			},
		},
	}
}

func TestDashboardEndpoint(t *testing.T) {
	utils.InitLogger()
	st := store.New(reportTestState())
	router := setupReportRouter(st)

	w := postJSON(t, router, "GET", "/reports/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	session := data["session"].(map[string]interface{})
	assert.Equal(t, "s1", session["id"])

	revenue := data["revenue"].(map[string]interface{})
	assert.Equal(t, float64(70000), revenue["received"])
	assert.Equal(t, float64(25000), revenue["pending"])
	assert.Equal(t, float64(95000), revenue["potential"])

	assert.Equal(t, float64(3), data["total_items_sold"])

	itemSales := data["item_sales"].([]interface{})
	assert.Len(t, itemSales, 2)
	top := itemSales[0].(map[string]interface{})
	assert.Equal(t, "m1", top["menu_id"])

	warnings := data["stock_warnings"].(map[string]interface{})
	outOfStock := warnings["out_of_stock"].([]interface{})
	assert.Len(t, outOfStock, 1)
	lowStock := warnings["low_stock"].([]interface{})
	assert.Len(t, lowStock, 1)
}

func TestDashboardEndpointUnknownSession(t *testing.T) {
	utils.InitLogger()
	st := store.New(reportTestState())
	router := setupReportRouter(st)

	w := postJSON(t, router, "GET", "/reports/dashboard?session_id=tidak-ada", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// Tanpa sesi cocok: angka nol, tidak ada field session
	_, hasSession := data["session"]
	assert.False(t, hasSession)
	revenue := data["revenue"].(map[string]interface{})
	assert.Equal(t, float64(0), revenue["potential"])
}

func TestBalanceEndpoint(t *testing.T) {
	utils.InitLogger()
	st := store.New(reportTestState())
	router := setupReportRouter(st)

	w := postJSON(t, router, "GET", "/reports/balance", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	assert.Equal(t, float64(70000), data["total_revenue"])
	assert.Equal(t, float64(1), data["total_transactions"])
	assert.Equal(t, float64(70000), data["cash_total"])
	assert.Equal(t, float64(0), data["transfer_total"])
}
