package main

import (
	"errors"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/frozen-po-app/config"
	"github.com/yeremiapane/frozen-po-app/database"
	"github.com/yeremiapane/frozen-po-app/middlewares"
	"github.com/yeremiapane/frozen-po-app/router"
	"github.com/yeremiapane/frozen-po-app/store"
	"github.com/yeremiapane/frozen-po-app/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB untuk penyimpanan snapshot
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&database.Snapshot{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	// Pulihkan state: skema berjalan -> skema lama (migrasi) -> seed.
	snapshots := database.NewSnapshotRepo(db)
	state, err := snapshots.Load()
	if err != nil {
		if errors.Is(err, database.ErrSnapshotCorrupt) {
			utils.ErrorLogger.Printf("Snapshot rusak, memakai data seed: %v", err)
		} else {
			utils.ErrorLogger.Printf("Gagal membaca snapshot, memakai data seed: %v", err)
		}
	}

	st := store.New(state)

	// Tulis balik sekali supaya hasil migrasi/seed langsung tersimpan
	// di bawah key skema berjalan.
	if err := snapshots.Save(st.State()); err != nil {
		utils.ErrorLogger.Printf("Failed to persist initial snapshot: %v", err)
	}

	utils.InfoLogger.Printf("State loaded: %d menu, %d orders, %d sessions",
		len(state.Menu), len(state.Orders), len(state.Sessions))

	// Setup router + rate limiter
	r := router.SetupRouter(st, snapshots)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
