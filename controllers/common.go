package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

// persistState menulis snapshot penuh setelah mutasi sukses. Kegagalan
// simpan hanya dicatat, tidak mengubah respons ke user.
func persistState(st *store.Store, snapshots *database.SnapshotRepo) {
	if snapshots == nil {
		return
	}
	if err := snapshots.Save(st.State()); err != nil {
		utils.ErrorLogger.Printf("Failed to persist snapshot: %v", err)
	}
}

// respondStoreError memetakan error dari store ke kode HTTP.
func respondStoreError(c *gin.Context, err error) {
	var stockErr *store.InsufficientStockError
	var validationErr *store.ValidationError

	switch {
	case errors.As(err, &stockErr):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, store.ErrSessionAlreadyOpen):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrEmptyCart):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrNoActiveSession):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, store.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
