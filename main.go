package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-kiosk/config"
	"github.com/yeremiapane/cafe-kiosk/database"
	"github.com/yeremiapane/cafe-kiosk/router"
	"github.com/yeremiapane/cafe-kiosk/services"
	"github.com/yeremiapane/cafe-kiosk/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	if err := utils.InitLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitJWT(cfg.JWTSecret, cfg.JWTTTL)
	utils.CurrencySymbol = cfg.CurrencySymbol

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if cfg.SeedMenu {
		if err := database.SeedMenu(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding menu: %v", err)
		}
	}

	orders := services.NewOrderService(db, services.Rates{Tax: cfg.TaxRate, Earn: cfg.EarnRate})

	purger := services.NewGuestOrderPurger(orders, cfg.GuestOrderRetention, cfg.PurgeInterval)
	purger.Start()
	defer purger.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(db, cfg, orders),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.InfoLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
}
