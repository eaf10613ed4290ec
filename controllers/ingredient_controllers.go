package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

type IngredientController struct {
	Store     *store.Store
	Snapshots *database.SnapshotRepo
}

func NewIngredientController(st *store.Store, snapshots *database.SnapshotRepo) *IngredientController {
	return &IngredientController{Store: st, Snapshots: snapshots}
}

func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of ingredients", ic.Store.Ingredients())
}

type ingredientReq struct {
	Name  string  `json:"name"`
	Stock float64 `json:"stock"`
	Unit  string  `json:"unit"`
}

func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var body ingredientReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ing, err := ic.Store.AddIngredient(body.Name, body.Stock, body.Unit)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(ic.Store, ic.Snapshots)
	utils.RespondJSON(c, http.StatusCreated, "Bahan baru ditambahkan", ing)
}

func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	ingredientID := c.Param("ingredient_id")

	var body ingredientReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ing, err := ic.Store.UpdateIngredient(ingredientID, body.Name, body.Stock, body.Unit)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(ic.Store, ic.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Stok bahan diperbarui", ing)
}

func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	ingredientID := c.Param("ingredient_id")

	if err := ic.Store.DeleteIngredient(ingredientID); err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(ic.Store, ic.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Bahan dihapus", gin.H{"ingredient_id": ingredientID})
}

// AdjustStock -> tombol +/- cepat di layar stok bahan; stok tidak bisa
// turun di bawah nol
func (ic *IngredientController) AdjustStock(c *gin.Context) {
	ingredientID := c.Param("ingredient_id")

	var body struct {
		Delta float64 `json:"delta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ing, err := ic.Store.AdjustIngredientStock(ingredientID, body.Delta)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(ic.Store, ic.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Stok bahan disesuaikan", ing)
}
