package router

import (
	"go-finance-assistant/internal/handler"
	"go-finance-assistant/internal/middleware"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type RouteConfig struct {
	App              *gin.Engine
	AuthHandler      handler.AuthHandler
	LedgerHandler    handler.LedgerHandler
	ReportHandler    handler.ReportHandler
	MarketHandler    handler.MarketHandler
	CorpusHandler    handler.CorpusHandler
	PlannerHandler   handler.PlannerHandler
	SafetyHandler    handler.SafetyHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware gin.HandlerFunc
}

func (c *RouteConfig) SetupRoute() {
	c.App.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "finance-assistant-api",
		})
	})

	c.App.Use(c.LoggerMiddleware)

	v1 := c.App.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.AuthHandler.Register)
			auth.POST("/login", c.AuthHandler.Login)
		}

		protected := v1.Group("")
		protected.Use(c.AuthMiddleware.JWTAuth())
		{
			wallets := protected.Group("/wallets")
			{
				wallets.POST("", c.LedgerHandler.CreateWallet)
				wallets.GET("", c.LedgerHandler.ListWallets)
				wallets.PATCH("/:name", c.LedgerHandler.PatchWallet)
			}

			transactions := protected.Group("/transactions")
			{
				transactions.POST("", c.LedgerHandler.CreateTransaction)
				transactions.GET("", c.LedgerHandler.ListTransactions)
				transactions.GET("/range", c.ReportHandler.TransactionsRange)
				transactions.PATCH("/:id", c.LedgerHandler.PatchTransaction)
				transactions.DELETE("/:id", c.LedgerHandler.DeleteTransaction)
			}

			investments := protected.Group("/investments")
			{
				investments.POST("", c.LedgerHandler.CreateInvestment)
				investments.GET("", c.LedgerHandler.ListInvestments)
				investments.PATCH("/:id", c.LedgerHandler.PatchInvestment)
				investments.DELETE("/:id", c.LedgerHandler.DeleteInvestment)
			}

			debts := protected.Group("/debts")
			{
				debts.POST("", c.LedgerHandler.CreateDebt)
				debts.GET("", c.LedgerHandler.ListDebts)
				debts.PATCH("/:id", c.LedgerHandler.PatchDebt)
				debts.DELETE("/:id", c.LedgerHandler.DeleteDebt)
			}

			reports := protected.Group("/reports")
			{
				reports.GET("/summary", c.ReportHandler.Summary)
				reports.POST("/visualize", c.ReportHandler.Visualize)
			}

			market := protected.Group("/market")
			{
				market.GET("/crypto", c.MarketHandler.TopCrypto)
				market.GET("/crypto/:symbol", c.MarketHandler.CryptoQuote)
				market.GET("/stocks", c.MarketHandler.TopStocks)
				market.GET("/stocks/:symbol", c.MarketHandler.StockDetail)
				market.GET("/overview", c.MarketHandler.Overview)
				market.POST("/compare", c.MarketHandler.CompareAssets)
				market.POST("/portfolio", c.MarketHandler.SuggestPortfolio)
			}

			corpora := protected.Group("/corpora")
			{
				corpora.POST("", c.CorpusHandler.Create)
				corpora.GET("", c.CorpusHandler.List)
				corpora.GET("/:name", c.CorpusHandler.Info)
				corpora.DELETE("/:name", c.CorpusHandler.Delete)
				corpora.POST("/:name/documents", c.CorpusHandler.AddDocuments)
				corpora.DELETE("/:name/documents/:documentId", c.CorpusHandler.DeleteDocument)
				corpora.POST("/:name/query", c.CorpusHandler.Query)
			}

			planner := protected.Group("/planner")
			{
				planner.POST("/budget", c.PlannerHandler.BudgetPlan)
				planner.POST("/goals", c.PlannerHandler.SetGoal)
				planner.POST("/progress", c.PlannerHandler.EvaluateProgress)
			}

			safety := protected.Group("/safety")
			{
				safety.POST("/classify", c.SafetyHandler.Classify)
			}
		}
	}
}
