package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/reports"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

// Format input datetime-local dari form tanggal bayar.
const paymentDateLayout = "2006-01-02T15:04"

type OrderController struct {
	Store     *store.Store
	Snapshots *database.SnapshotRepo
}

func NewOrderController(st *store.Store, snapshots *database.SnapshotRepo) *OrderController {
	return &OrderController{Store: st, Snapshots: snapshots}
}

// GetAllOrders -> riwayat order, bisa difilter ?session_id= dan
// ?payment_status=PAID|UNPAID
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", reports.FilterAll)
	paymentStatus := c.DefaultQuery("payment_status", reports.FilterAll)

	orders := reports.Filter(oc.Store.Orders(), sessionID, paymentStatus)
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// SubmitOrder -> transaksi inti: validasi keranjang, potong stok, catat order
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	type reqBody struct {
		CustomerName     string            `json:"customer_name"`
		Source           string            `json:"source"`
		Items            []store.CartEntry `json:"items"`
		Note             string            `json:"note"`
		NoteActive       bool              `json:"note_active"`
		AdjustmentAmount int               `json:"adjustment_amount"`
		AdjustmentActive bool              `json:"adjustment_active"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.SubmitOrder(store.OrderInput{
		CustomerName:     body.CustomerName,
		Source:           body.Source,
		Items:            body.Items,
		Note:             body.Note,
		NoteActive:       body.NoteActive,
		AdjustmentAmount: body.AdjustmentAmount,
		AdjustmentActive: body.AdjustmentActive,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(oc.Store, oc.Snapshots)
	utils.RespondJSON(c, http.StatusCreated, "Pesanan berhasil dicatat", order)
}

// TogglePaymentStatus -> bolak-balik lunas/belum bayar
func (oc *OrderController) TogglePaymentStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := oc.Store.TogglePaid(orderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(oc.Store, oc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Payment status updated", order)
}

func (oc *OrderController) UpdatePaymentMethod(c *gin.Context) {
	orderID := c.Param("order_id")

	var body struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.SetPaymentMethod(orderID, body.PaymentMethod)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(oc.Store, oc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Payment method updated", order)
}

// UpdatePaymentDate menimpa tanggal bayar dari input user.
// Input kosong atau tidak valid dibiarkan: order dikembalikan apa adanya.
func (oc *OrderController) UpdatePaymentDate(c *gin.Context) {
	orderID := c.Param("order_id")

	var body struct {
		PaymentDate string `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, perr := time.ParseInLocation(paymentDateLayout, body.PaymentDate, time.Local)
	if body.PaymentDate == "" || perr != nil {
		order, err := oc.Store.Order(orderID)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Payment date unchanged", order)
		return
	}

	order, err := oc.Store.SetPaymentDate(orderID, date)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(oc.Store, oc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Payment date updated", order)
}

// ResetOrders -> hapus seluruh riwayat order (tombol Reset di riwayat)
func (oc *OrderController) ResetOrders(c *gin.Context) {
	oc.Store.ResetOrders()
	persistState(oc.Store, oc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Semua order dihapus", nil)
}
