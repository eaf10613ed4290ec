package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/models"
	"github.com/yeremiapane/frozen-po-app/reports"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

// ReportController hanya membaca store; semua angka dihitung ulang
// dari state saat ini pada setiap request.
type ReportController struct {
	Store *store.Store
}

func NewReportController(st *store.Store) *ReportController {
	return &ReportController{Store: st}
}

// displaySession meniru dashboard: sesi dari query kalau ada, kalau tidak
// sesi aktif, kalau tidak sesi terbaru.
func (rc *ReportController) displaySession(c *gin.Context) (models.POSession, bool) {
	if sessionID := c.Query("session_id"); sessionID != "" && sessionID != reports.FilterAll {
		for _, s := range rc.Store.Sessions() {
			if s.ID == sessionID {
				return s, true
			}
		}
		return models.POSession{}, false
	}
	if session, open := rc.Store.ActiveSession(); open {
		return session, true
	}
	sessions := rc.Store.Sessions()
	if len(sessions) > 0 {
		return sessions[0], true
	}
	return models.POSession{}, false
}

// GetDashboard -> rekap satu sesi: omzet, ranking item, peringatan stok
func (rc *ReportController) GetDashboard(c *gin.Context) {
	session, found := rc.displaySession(c)

	var sessionOrders []models.Order
	if found {
		sessionOrders = reports.Filter(rc.Store.Orders(), session.ID, reports.FilterAll)
	}

	ranking := reports.ItemRanking(sessionOrders)

	payload := gin.H{
		"revenue":          reports.Revenue(sessionOrders),
		"item_sales":       ranking,
		"total_items_sold": reports.TotalItemsSold(ranking),
		"stock_warnings":   reports.StockWarnings(rc.Store.Menu()),
	}
	if found {
		payload["session"] = session
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard report", payload)
}

// GetBalance -> rekap keuangan order lunas, bisa difilter ?session_id=
func (rc *ReportController) GetBalance(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", reports.FilterAll)
	orders := reports.Filter(rc.Store.Orders(), sessionID, reports.FilterAll)

	utils.RespondJSON(c, http.StatusOK, "Balance report", reports.Balance(orders))
}
