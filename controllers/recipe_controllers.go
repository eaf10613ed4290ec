package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

type RecipeController struct {
	Store     *store.Store
	Snapshots *database.SnapshotRepo
}

func NewRecipeController(st *store.Store, snapshots *database.SnapshotRepo) *RecipeController {
	return &RecipeController{Store: st, Snapshots: snapshots}
}

func (rc *RecipeController) GetAllRecipes(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of recipes", rc.Store.Recipes())
}

type recipeReq struct {
	Title       string `json:"title"`
	YieldInfo   string `json:"yield_info"`
	Ingredients string `json:"ingredients"`
}

func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var body recipeReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	recipe, err := rc.Store.AddRecipe(body.Title, body.YieldInfo, body.Ingredients)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(rc.Store, rc.Snapshots)
	utils.RespondJSON(c, http.StatusCreated, "Resep baru berhasil dibuat", recipe)
}

func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	recipeID := c.Param("recipe_id")

	var body recipeReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	recipe, err := rc.Store.UpdateRecipe(recipeID, body.Title, body.YieldInfo, body.Ingredients)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(rc.Store, rc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Resep berhasil disimpan", recipe)
}

func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	recipeID := c.Param("recipe_id")

	if err := rc.Store.DeleteRecipe(recipeID); err != nil {
		respondStoreError(c, err)
		return
	}

	persistState(rc.Store, rc.Snapshots)
	utils.RespondJSON(c, http.StatusOK, "Resep dihapus", gin.H{"recipe_id": recipeID})
}
