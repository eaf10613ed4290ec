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

func setupMenuRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(st, nil)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	router.PATCH("/menus/:menu_id/stock", menuCtrl.UpdateMenuStock)
	router.PATCH("/menus/:menu_id/toggle", menuCtrl.ToggleMenuActive)
	return router
}

func TestMenuEndpointCRUD(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{})
	router := setupMenuRouter(st)

	w := postJSON(t, router, "POST", "/menus", map[string]interface{}{
		"name":        "Ekkado (Pack isi 10)",
		"price":       35000,
		"stock":       20,
		"description": "Best seller",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok)
	menuID, ok := data["id"].(string)
	assert.True(t, ok)

	w = postJSON(t, router, "PATCH", "/menus/"+menuID, map[string]interface{}{
		"name":  "Ekkado (Pack isi 12)",
		"price": 40000,
		"stock": 15,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ekkado (Pack isi 12)", st.Menu()[0].Name)

	w = postJSON(t, router, "PATCH", "/menus/"+menuID+"/stock", map[string]interface{}{
		"stock": 3,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, st.Menu()[0].Stock)

	w = postJSON(t, router, "DELETE", "/menus/"+menuID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.Menu())

	w = postJSON(t, router, "DELETE", "/menus/"+menuID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuEndpointValidation(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{})
	router := setupMenuRouter(st)

	w := postJSON(t, router, "POST", "/menus", map[string]interface{}{
		"name":  "   ",
		"price": 1000,
		"stock": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "POST", "/menus", map[string]interface{}{
		"name":  "Nugget",
		"price": -1,
		"stock": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuEndpointActiveFilter(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{
		Menu: []models.MenuItem{
			{ID: "m1", Name: "Ekkado", Price: 35000, Stock: 5, IsActive: true},
			{ID: "m2", Name: "Lumpia", Price: 25000, Stock: 5, IsActive: false},
		},
	})
	router := setupMenuRouter(st)

	w := postJSON(t, router, "GET", "/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"].([]interface{}), 2)

	w = postJSON(t, router, "GET", "/menus?active=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"].([]interface{}), 1)
}

func TestMenuEndpointToggle(t *testing.T) {
	utils.InitLogger()
	st := store.New(models.AppState{
		Menu: []models.MenuItem{
			{ID: "m1", Name: "Ekkado", Price: 35000, Stock: 5, IsActive: true},
		},
	})
	router := setupMenuRouter(st)

	w := postJSON(t, router, "PATCH", "/menus/m1/toggle", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, st.Menu()[0].IsActive)

	w = postJSON(t, router, "PATCH", "/menus/m1/toggle", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, st.Menu()[0].IsActive)
}
