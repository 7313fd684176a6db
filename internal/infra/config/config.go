package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервисов.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	TZ     string `envconfig:"TZ" default:"Asia/Tokyo"`
	Port   int    `envconfig:"PORT" default:"8080"`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	PGDSN string `envconfig:"PG_DSN"`

	RedisAddr string `envconfig:"REDIS_ADDR"`

	// AuthSecret подписывает токены идентичности на границе API.
	AuthSecret string `envconfig:"AUTH_SECRET"`

	OpenAI struct {
		APIKey  string        `envconfig:"OPENAI_API_KEY"`
		BaseURL string        `envconfig:"OPENAI_BASE_URL"`
		Model   string        `envconfig:"OPENAI_MODEL" default:"gpt-4.1"`
		Timeout time.Duration `envconfig:"GEN_TIMEOUT" default:"120s"`
	} `envconfig:""`

	Catalog struct {
		// Path переопределяет встроенный каталог карточек дизайна.
		Path string `envconfig:"CATALOG_PATH"`
	} `envconfig:""`

	Retry struct {
		// CacheTTL — срок жизни кэша повторной генерации.
		CacheTTL time.Duration `envconfig:"RETRY_CACHE_TTL" default:"30m"`
	} `envconfig:""`

	Queues struct {
		Events string `envconfig:"EVENTS_QUEUE_KEY" default:"generation_events"`
	} `envconfig:""`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
