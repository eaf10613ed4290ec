package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

type SessionController struct {
	Store     *store.Store
	Snapshots *database.SnapshotRepo
}

func NewSessionController(st *store.Store, snapshots *database.SnapshotRepo) *SessionController {
	return &SessionController{Store: st, Snapshots: snapshots}
}

func (sc *SessionController) GetAllSessions(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of sessions", sc.Store.Sessions())
}

// GetActiveSession -> sesi OPEN saat ini, 404 kalau PO sedang tutup
func (sc *SessionController) GetActiveSession(c *gin.Context) {
	session, open := sc.Store.ActiveSession()
	if !open {
		utils.RespondError(c, http.StatusNotFound, store.ErrNoActiveSession)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active session", session)
}

// StartSession -> buka periode PO baru; ditolak kalau masih ada yang buka
func (sc *SessionController) StartSession(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	// body boleh kosong, nama memakai default
	_ = c.ShouldBindJSON(&body)

	session, err := sc.Store.StartSession(body.Name)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(sc.Store, sc.Snapshots)
	utils.RespondJSON(c, http.StatusCreated, "PO Baru berhasil dibuka", session)
}

// CloseSession -> tutup sesi OPEN; tanpa sesi terbuka jadi no-op
func (sc *SessionController) CloseSession(c *gin.Context) {
	session, closed := sc.Store.CloseSession()
	if !closed {
		utils.RespondJSON(c, http.StatusOK, "Tidak ada periode PO yang terbuka", nil)
		return
	}

	persistState(sc.Store, sc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Periode PO ditutup", session)
}
