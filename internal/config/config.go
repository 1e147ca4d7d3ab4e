package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Market    MarketConfig
	Retrieval RetrievalConfig
	Storage   StorageConfig
	Safety    SafetyConfig
	Ledger    LedgerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey      string
	ExpirationTime int // in hours
}

type MarketConfig struct {
	CryptoBaseURL string
	CryptoAPIKey  string
	StockBaseURL  string
	QuoteCacheTTL int // in seconds
}

type RetrievalConfig struct {
	BaseURL string
	APIKey  string
	TopK    int
}

type StorageConfig struct {
	Bucket     string
	MakePublic bool
}

type SafetyConfig struct {
	EndpointURL string
	ModelName   string
	MaxLength   int
}

type LedgerConfig struct {
	// DebtDeletionPolicy is "repay" (deleting a debt debits the wallet by
	// the borrowed amount) or "forgive" (no balance change).
	DebtDeletionPolicy string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "finance_assistant"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", "your-secret-key"),
			ExpirationTime: getEnvInt("JWT_EXPIRY", 24),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Market: MarketConfig{
			CryptoBaseURL: getEnv("CRYPTO_API_URL", "https://pro-api.coinmarketcap.com"),
			CryptoAPIKey:  getEnv("COINMARKETCAP_API_KEY", ""),
			StockBaseURL:  getEnv("STOCK_API_URL", ""),
			QuoteCacheTTL: getEnvInt("QUOTE_CACHE_TTL", 300),
		},
		Retrieval: RetrievalConfig{
			BaseURL: getEnv("RETRIEVAL_API_URL", ""),
			APIKey:  getEnv("RETRIEVAL_API_KEY", ""),
			TopK:    getEnvInt("RETRIEVAL_TOP_K", 10),
		},
		Storage: StorageConfig{
			Bucket:     getEnv("FIGURES_BUCKET", getEnv("GCS_BUCKET", "")),
			MakePublic: getEnvBool("FIGURES_MAKE_PUBLIC", true),
		},
		Safety: SafetyConfig{
			EndpointURL: getEnv("SAFETY_API_URL", ""),
			ModelName:   getEnv("SAFETY_MODEL_NAME", "defend-model-v1"),
			MaxLength:   getEnvInt("SAFETY_MAX_LENGTH", 512),
		},
		Ledger: LedgerConfig{
			DebtDeletionPolicy: getEnv("DEBT_DELETION_POLICY", "repay"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
