package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/services"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

type MarketingController struct {
	Store   *store.Store
	Service *services.MarketingService
}

func NewMarketingController(st *store.Store, svc *services.MarketingService) *MarketingController {
	return &MarketingController{Store: st, Service: svc}
}

// GenerateCopy -> minta caption promosi dari snapshot menu saat ini.
// Selalu 200: kegagalan layanan eksternal sudah jadi teks fallback.
func (mc *MarketingController) GenerateCopy(c *gin.Context) {
	text := mc.Service.GenerateCopy(mc.Store.Menu())
	utils.RespondJSON(c, http.StatusOK, "Marketing copy generated", gin.H{"text": text})
}
