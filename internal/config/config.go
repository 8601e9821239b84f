package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cloud-ru/feasibility-go/internal/projection"
)

// Config содержит конфигурацию сервера и расчётного движка
type Config struct {
	Port int

	MaxProjectYears int
	MaxCapacity     float64
	MaxRate         float64
	MaxCapex        float64

	DefaultProjectYears int
	DefaultDiscountRate float64
	EquityHurdleRate    float64

	StorageDir  string
	DatabaseURL string

	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogDirectory    string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnvInt("PORT", 8000),
		MaxProjectYears:     getEnvInt("MAX_PROJECT_YEARS", 60),
		MaxCapacity:         getEnvFloat("MAX_CAPACITY", 1e7),
		MaxRate:             getEnvFloat("MAX_RATE", 200),
		MaxCapex:            getEnvFloat("MAX_CAPEX", 1e13),
		DefaultProjectYears: getEnvInt("DEFAULT_PROJECT_YEARS", 20),
		DefaultDiscountRate: getEnvFloat("DEFAULT_DISCOUNT_RATE", 7),
		EquityHurdleRate:    getEnvFloat("EQUITY_HURDLE_RATE", 10),
		StorageDir:          getEnvString("STORAGE_DIR", ".feasibility"),
		DatabaseURL:         getEnvString("DATABASE_URL", ""),
		OTELEndpoint:        getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:     getEnvString("OTEL_SERVICE_NAME", "feasibility-server"),
		LogLevel:            getEnvString("LOG_LEVEL", "INFO"),
		LogDirectory:        getEnvString("LOG_DIRECTORY", ""),
	}

	return cfg, nil
}

// EngineOptions возвращает параметры движка по умолчанию из конфигурации
func (c *Config) EngineOptions() projection.Options {
	opts := projection.DefaultOptions()
	opts.DefaultProjectYears = c.DefaultProjectYears
	opts.DefaultDiscountRate = c.DefaultDiscountRate
	opts.EquityHurdleRate = c.EquityHurdleRate
	return opts
}

func getEnvString(key, defaultValue string) string {
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

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
