package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/megdcosta/frijio/internal/auth"
	"github.com/megdcosta/frijio/internal/config"
	"github.com/megdcosta/frijio/internal/handlers"
	"github.com/megdcosta/frijio/internal/metrics"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/store"
	"github.com/megdcosta/frijio/internal/websocket"
)

// Deps bundles everything the router needs.
type Deps struct {
	Config   *config.Config
	Store    *store.Store
	Fridges  *service.FridgeService
	Items    *service.ItemService
	Expenses *service.ExpenseService
	AI       *service.AIService
	Hub      *websocket.Hub
}

func SetupRouter(deps Deps) *gin.Engine {
	if deps.Config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(metrics.Middleware())
	router.Use(corsMiddleware(deps.Config.CORS.AllowedOrigins))
	router.Use(timeoutMiddleware(deps.Config.RequestTimeout))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(deps.Config.JWT)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Store.Accounts, jwtManager)
	userHandler := handlers.NewUserHandler(deps.Store.Accounts, deps.Fridges)
	fridgeHandler := handlers.NewFridgeHandler(deps.Fridges, deps.Hub)
	itemHandler := handlers.NewItemHandler(deps.Fridges, deps.Items, deps.Hub)
	groceryHandler := handlers.NewGroceryHandler(deps.Fridges, deps.Items, deps.Hub)
	expenseHandler := handlers.NewExpenseHandler(deps.Fridges, deps.Expenses, deps.Hub)
	aiHandler := handlers.NewAIHandler(deps.AI)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub)

	// Public routes
	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(jwtManager))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userHandler.GetCurrentUser)
		}

		fridges := protected.Group("/fridges")
		{
			fridges.GET("", fridgeHandler.GetFridges)
			fridges.POST("", fridgeHandler.CreateFridge)
			fridges.POST("/join", fridgeHandler.JoinFridge)
			fridges.GET("/:id", fridgeHandler.GetFridge)

			// Inventory items - scoped to one fridge
			items := fridges.Group("/:id/items")
			{
				items.GET("", itemHandler.GetItems)
				items.POST("", itemHandler.CreateItem)
				items.PUT("/:itemId", itemHandler.UpdateItem)
				items.DELETE("/:itemId", itemHandler.DeleteItem)
			}

			// Grocery list items
			grocery := fridges.Group("/:id/grocery-items")
			{
				grocery.GET("", groceryHandler.GetItems)
				grocery.POST("", groceryHandler.CreateItem)
				grocery.POST("/:itemId/toggle", groceryHandler.ToggleItem)
				grocery.DELETE("/:itemId", groceryHandler.DeleteItem)
			}

			// Expenses - flat collection filtered by fridge
			expenses := fridges.Group("/:id/expenses")
			{
				expenses.GET("", expenseHandler.GetExpenses)
				expenses.POST("", expenseHandler.CreateExpense)
			}
		}

		aiRoutes := protected.Group("/ai")
		{
			aiRoutes.POST("/scan-receipt", aiHandler.ScanReceipt)
			aiRoutes.POST("/recommend-recipes", aiHandler.RecommendRecipes)
		}

		protected.GET("/ws", wsHandler.HandleWebSocket)
	}

	return router
}

// corsMiddleware allows the configured frontend origins.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Length, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// timeoutMiddleware bounds every request with a deadline so no operation
// blocks indefinitely on the store or an upstream API.
func timeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
