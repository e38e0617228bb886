package app

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// EnvPrefix - префикс переменных окружения сервиса.
const EnvPrefix = "ORDERFLOW"

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string `envconfig:"GRPC_ADDR" default:":50051"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	// Пустой список отключает публикацию событий.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"orderflow.order.events"`

	// Пустой DSN означает in-memory демо-каталог.
	PostgresDSN         string `envconfig:"POSTGRES_DSN"`
	PostgresAutoMigrate bool   `envconfig:"POSTGRES_AUTO_MIGRATE" default:"true"`

	AllowCancellation bool `envconfig:"ALLOW_CANCELLATION" default:"false"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// DefaultConfig возвращает значения по умолчанию без чтения окружения.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		MetricsAddr:         ":9090",
		KafkaTopic:          "orderflow.order.events",
		PostgresAutoMigrate: true,
		LogLevel:            "info",
		LogFormat:           LogFormatText,
	}
}

// LoadConfig читает ORDERFLOW_* переменные окружения поверх значений по умолчанию.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GRPCAddr) == "" {
		return errors.New("grpc address is required")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// TransitionRules возвращает таблицу переходов с учётом ALLOW_CANCELLATION.
func (c Config) TransitionRules() domain.TransitionRules {
	rules := domain.DefaultTransitions()
	if c.AllowCancellation {
		rules = rules.WithCancellation()
	}
	return rules
}

// NewLogger настраивает logrus по уровню и формату из конфигурации.
func NewLogger(cfg Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	logger := log.New()
	logger.SetLevel(level)
	if cfg.LogFormat == LogFormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
