package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/frozen-po-app/controllers"
	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/middlewares"
	"github.com/yeremiapane/frozen-po-app/services"
	"github.com/yeremiapane/frozen-po-app/store"
)

func SetupRouter(st *store.Store, snapshots *database.SnapshotRepo) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	menuCtrl := controllers.NewMenuController(st, snapshots)
	sessionCtrl := controllers.NewSessionController(st, snapshots)
	orderCtrl := controllers.NewOrderController(st, snapshots)
	ingredientCtrl := controllers.NewIngredientController(st, snapshots)
	recipeCtrl := controllers.NewRecipeController(st, snapshots)
	reportCtrl := controllers.NewReportController(st)
	marketingCtrl := controllers.NewMarketingController(st, services.GetMarketingService())

	api := r.Group("/api")
	{
		// Menu & stok
		api.GET("/menus", menuCtrl.GetAllMenus)
		api.POST("/menus", menuCtrl.CreateMenu)
		api.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		api.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
		api.PATCH("/menus/:menu_id/stock", menuCtrl.UpdateMenuStock)
		api.PATCH("/menus/:menu_id/toggle", menuCtrl.ToggleMenuActive)

		// Periode PO
		api.GET("/sessions", sessionCtrl.GetAllSessions)
		api.GET("/sessions/active", sessionCtrl.GetActiveSession)
		api.POST("/sessions", sessionCtrl.StartSession)
		api.POST("/sessions/close", sessionCtrl.CloseSession)

		// Pesanan
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.SubmitOrder)
		api.PATCH("/orders/:order_id/payment-status", orderCtrl.TogglePaymentStatus)
		api.PATCH("/orders/:order_id/payment-method", orderCtrl.UpdatePaymentMethod)
		api.PATCH("/orders/:order_id/payment-date", orderCtrl.UpdatePaymentDate)
		api.DELETE("/orders", orderCtrl.ResetOrders)

		// Stok bahan
		api.GET("/ingredients", ingredientCtrl.GetAllIngredients)
		api.POST("/ingredients", ingredientCtrl.CreateIngredient)
		api.PATCH("/ingredients/:ingredient_id", ingredientCtrl.UpdateIngredient)
		api.DELETE("/ingredients/:ingredient_id", ingredientCtrl.DeleteIngredient)
		api.PATCH("/ingredients/:ingredient_id/adjust", ingredientCtrl.AdjustStock)

		// Buku resep
		api.GET("/recipes", recipeCtrl.GetAllRecipes)
		api.POST("/recipes", recipeCtrl.CreateRecipe)
		api.PATCH("/recipes/:recipe_id", recipeCtrl.UpdateRecipe)
		api.DELETE("/recipes/:recipe_id", recipeCtrl.DeleteRecipe)

		// Laporan
		api.GET("/reports/dashboard", reportCtrl.GetDashboard)
		api.GET("/reports/balance", reportCtrl.GetBalance)

		// Marketing AI; dibatasi karena tiap request memanggil API eksternal
		api.POST("/marketing/generate", middlewares.NewMarketingRateLimiter(), marketingCtrl.GenerateCopy)
	}

	return r
}
