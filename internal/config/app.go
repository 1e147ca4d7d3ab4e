package config

import (
	"time"

	"go-finance-assistant/internal/handler"
	"go-finance-assistant/internal/middleware"
	"go-finance-assistant/internal/repository"
	"go-finance-assistant/internal/router"
	"go-finance-assistant/internal/usecase"
	"go-finance-assistant/pkg/chart"
	"go-finance-assistant/pkg/marketdata"
	"go-finance-assistant/pkg/retrieval"
	"go-finance-assistant/pkg/safety"
	"go-finance-assistant/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BootstrapConfig carries everything the application needs wired up.
// External clients are constructed in main and injected here so tests
// can substitute fakes.
type BootstrapConfig struct {
	DB         *gorm.DB
	Redis      *redis.Client
	App        *gin.Engine
	Log        *logrus.Logger
	Validate   *validator.Validate
	Config     *Config
	Crypto     marketdata.CryptoClient
	Stocks     marketdata.StockClient
	Retrieval  retrieval.Client
	Classifier safety.Classifier
	Uploader   chart.Uploader
}

func Bootstrap(config *BootstrapConfig) {
	jwtManager := token.NewTokenManager(config.Config.JWT.SecretKey, config.Config.JWT.ExpirationTime)
	debtPolicy := usecase.ParseDebtDeletionPolicy(config.Config.Ledger.DebtDeletionPolicy)

	// setup repositories
	ledgerRepository := repository.NewLedgerRepository(config.DB, config.Log)
	userRepository := repository.NewUserRepository(config.DB, config.Log)

	// setup use cases
	ledgerUsecase := usecase.NewLedgerUsecase(ledgerRepository, config.Log, debtPolicy)
	analysisUsecase := usecase.NewAnalysisUsecase(ledgerRepository, config.Log)
	visualizeUsecase := usecase.NewVisualizeUsecase(analysisUsecase, config.Uploader, config.Log)
	marketUsecase := usecase.NewMarketUsecase(
		config.Crypto,
		config.Stocks,
		config.Log,
		config.Redis,
		time.Duration(config.Config.Market.QuoteCacheTTL)*time.Second,
	)
	corpusUsecase := usecase.NewCorpusUsecase(config.Retrieval, config.Log, config.Config.Retrieval.TopK)
	plannerUsecase := usecase.NewPlannerUsecase(config.Log)
	safetyUsecase := usecase.NewSafetyUsecase(config.Classifier, config.Log)
	authUsecase := usecase.NewAuthUsecase(userRepository, config.Log, jwtManager)

	// setup handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerUsecase, config.Log, config.Validate)
	reportHandler := handler.NewReportHandler(analysisUsecase, visualizeUsecase, config.Log)
	marketHandler := handler.NewMarketHandler(marketUsecase, config.Log, config.Validate)
	corpusHandler := handler.NewCorpusHandler(corpusUsecase, config.Log, config.Validate)
	plannerHandler := handler.NewPlannerHandler(plannerUsecase, config.Log, config.Validate)
	safetyHandler := handler.NewSafetyHandler(safetyUsecase, config.Log, config.Validate)
	authHandler := handler.NewAuthHandler(authUsecase, config.Log, config.Validate)

	// setup middleware
	authMiddleware := middleware.NewAuthMiddleware(config.Config.JWT.SecretKey, config.Log, jwtManager)

	routeConfig := router.RouteConfig{
		App:              config.App,
		AuthHandler:      authHandler,
		LedgerHandler:    ledgerHandler,
		ReportHandler:    reportHandler,
		MarketHandler:    marketHandler,
		CorpusHandler:    corpusHandler,
		PlannerHandler:   plannerHandler,
		SafetyHandler:    safetyHandler,
		AuthMiddleware:   authMiddleware,
		LoggerMiddleware: middleware.LoggerMiddleware(config.Log),
	}
	routeConfig.SetupRoute()
}
