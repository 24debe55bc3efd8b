package main

import (
	"database/sql"
	"log"
	"net/http"

	"dentalstore-be/internal/category"
	"dentalstore-be/internal/config"
	"dentalstore-be/internal/db"
	"dentalstore-be/internal/logger"
	"dentalstore-be/internal/order"
	"dentalstore-be/internal/product"
	"dentalstore-be/internal/report"
	"dentalstore-be/internal/rest"
	"dentalstore-be/internal/review"
	"dentalstore-be/internal/user"
	"dentalstore-be/internal/variant"

	"go.uber.org/zap"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	productRepo := product.NewRepository(database)
	categoryRepo := category.NewRepository(database)
	variantRepo := variant.NewRepository(database)
	reviewRepo := review.NewRepository(database)
	orderRepo := order.NewRepository(database)
	reportRepo := report.NewRepository(database)

	return rest.NewRouter(cfg.AppEnv, rest.Services{
		User:     user.NewService(userRepo),
		Product:  product.NewService(productRepo),
		Category: category.NewService(categoryRepo),
		Variant:  variant.NewService(variantRepo, productRepo),
		Review:   review.NewService(reviewRepo, productRepo),
		Order:    order.NewService(orderRepo),
		Report:   report.NewService(reportRepo),
	})
}
