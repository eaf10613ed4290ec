package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/frozen-po-app/controllers"
	"github.com/yeremiapane/frozen-po-app/models"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

func setupSessionRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	sessionCtrl := controllers.NewSessionController(st, nil)
	router.GET("/sessions", sessionCtrl.GetAllSessions)
	router.GET("/sessions/active", sessionCtrl.GetActiveSession)
	router.POST("/sessions", sessionCtrl.StartSession)
	router.POST("/sessions/close", sessionCtrl.CloseSession)
	return router
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{})
	router := setupSessionRouter(st)

	// Belum ada sesi terbuka
	w := postJSON(t, router, "GET", "/sessions/active", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(t, router, "POST", "/sessions", map[string]interface{}{
		"name": "PO Lebaran",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PO Baru berhasil dibuka", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "PO Lebaran", data["name"])
	assert.Equal(t, "OPEN", data["status"])

	w = postJSON(t, router, "GET", "/sessions/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Sesi kedua ditolak selama yang pertama masih buka
	w = postJSON(t, router, "POST", "/sessions", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(t, router, "POST", "/sessions/close", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Periode PO ditutup", resp["message"])

	w = postJSON(t, router, "GET", "/sessions/active", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCloseSessionEndpointNoop(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{})
	router := setupSessionRouter(st)

	w := postJSON(t, router, "POST", "/sessions/close", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tidak ada periode PO yang terbuka", resp["message"])
}

func TestStartSessionEndpointDefaultName(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{})
	router := setupSessionRouter(st)

	// Tanpa body sama sekali juga harus jalan
	w := postJSON(t, router, "POST", "/sessions", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	sessions := st.Sessions()
	assert.Len(t, sessions, 1)
	assert.Contains(t, sessions[0].Name, "PO #1")
}
