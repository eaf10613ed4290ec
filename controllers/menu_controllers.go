package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

type MenuController struct {
	Store     *store.Store
	Snapshots *database.SnapshotRepo
}

func NewMenuController(st *store.Store, snapshots *database.SnapshotRepo) *MenuController {
	return &MenuController{Store: st, Snapshots: snapshots}
}

// GetAllMenus -> list katalog; ?active=true hanya menu aktif
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	if c.Query("active") == "true" {
		utils.RespondJSON(c, http.StatusOK, "List of active menus", mc.Store.ActiveMenu())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Store.Menu())
}

type menuReq struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	var body menuReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Store.AddMenuItem(body.Name, body.Price, body.Stock, body.Description)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(mc.Store, mc.Snapshots)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	menuID := c.Param("menu_id")

	var body menuReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Store.UpdateMenuItem(menuID, body.Name, body.Price, body.Stock, body.Description)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(mc.Store, mc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Menu updated", item)
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	menuID := c.Param("menu_id")

	if err := mc.Store.DeleteMenuItem(menuID); err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(mc.Store, mc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": menuID})
}

// ToggleMenuActive -> sembunyikan/tampilkan menu tanpa menghapusnya
func (mc *MenuController) ToggleMenuActive(c *gin.Context) {
	menuID := c.Param("menu_id")

	item, err := mc.Store.ToggleMenuActive(menuID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(mc.Store, mc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Menu active flag toggled", item)
}

// UpdateMenuStock -> koreksi stok manual ke nilai absolut
func (mc *MenuController) UpdateMenuStock(c *gin.Context) {
	menuID := c.Param("menu_id")

	var body struct {
		Stock int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Store.SetMenuStock(menuID, body.Stock)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(mc.Store, mc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Menu stock updated", item)
}
