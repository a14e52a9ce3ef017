package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/manfrommother/spimex-api/internal/api/http"
	"github.com/manfrommother/spimex-api/internal/infrastructure/click"
	"github.com/manfrommother/spimex-api/internal/infrastructure/kafka"
	"github.com/manfrommother/spimex-api/internal/infrastructure/pg"
	"github.com/manfrommother/spimex-api/internal/infrastructure/redis"
)

const AppName = "SPIMEX"

// CacheConfig — момент ежедневного сброса кэша (местное время сервиса).
// Переменные: SPIMEX_CACHE_RESET_HOUR, SPIMEX_CACHE_RESET_MINUTE.
type CacheConfig struct {
	ResetHour   int `envconfig:"RESET_HOUR" default:"14"`
	ResetMinute int `envconfig:"RESET_MINUTE" default:"11"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом SPIMEX.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Cache      CacheConfig       `envconfig:"CACHE"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
