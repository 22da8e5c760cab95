package main

import (
	"context"
	"os"

	"github.com/megdcosta/frijio/internal/ai"
	"github.com/megdcosta/frijio/internal/api"
	"github.com/megdcosta/frijio/internal/config"
	"github.com/megdcosta/frijio/internal/database"
	"github.com/megdcosta/frijio/internal/logging"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/store"
	"github.com/megdcosta/frijio/internal/store/memory"
	"github.com/megdcosta/frijio/internal/store/postgres"
	"github.com/megdcosta/frijio/internal/websocket"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup()

	var st *store.Store
	switch cfg.Store.Backend {
	case "memory":
		logger.Warn("using in-memory store, data will not survive restarts")
		st = memory.New()
	default:
		db, err := database.Connect(context.Background(), cfg.Database)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		st = postgres.New(db)
	}

	fridges := service.NewFridgeService(st.Users, st.Fridges, logger)
	items := service.NewItemService(st.Fridges, st.Items, st.Grocery, logger)
	expenses := service.NewExpenseService(st.Expenses, logger)

	ocrClient := ai.NewOCRClient(cfg.AI.OCRAPIKey, cfg.AI.OCRURL)
	anthropicClient := ai.NewAnthropicClient(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiService := service.NewAIService(ocrClient, anthropicClient, anthropicClient, logger)

	hub := websocket.NewHub()
	go hub.Run()

	router := api.SetupRouter(api.Deps{
		Config:   cfg,
		Store:    st,
		Fridges:  fridges,
		Items:    items,
		Expenses: expenses,
		AI:       aiService,
		Hub:      hub,
	})

	logger.Info("starting server", "port", cfg.Port, "store", cfg.Store.Backend)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
