package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger   = key("logger")
	KeyUsername = key("username")
	KeyMetrics  = key("metrics")
)

type Config struct {
	Service      Service
	Postgres     Postgres
	Notification Notification
	Kafka        Kafka
	Metrics      Metrics
	Logger       Logger
	Platform     Platform
}

type Service struct {
	Port      string `env:"MESSAGING_SERVICE_PORT" env-default:"4001"`
	Name      string `env:"MESSAGING_SERVICE_NAME" env-default:"messenger-service"`
	JWTSecret string `env:"JWT_SECRET" env-required:"true"`
}

type Postgres struct {
	User     string `env:"MESSAGING_SERVICE_PG_USER" env-required:"true"`
	Password string `env:"MESSAGING_SERVICE_PG_PASSWORD"`
	Database string `env:"MESSAGING_SERVICE_PG_DB" env-required:"true"`
	Host     string `env:"MESSAGING_SERVICE_PG_HOST" env-default:"localhost"`
	Port     string `env:"MESSAGING_SERVICE_PG_PORT" env-default:"5432"`
	SSLMode  string `env:"MESSAGING_SERVICE_PG_SSL_MODE" env-default:"disable"`
}

type Notification struct {
	Enabled   bool   `env:"PUSH_NOTIFICATIONS_ENABLED" env-default:"false"`
	AuthURL   string `env:"AUTH_MICROSERVICE_URL"`
	NotifyURL string `env:"NOTIFICATION_MICROSERVICE_URL"`
	Username  string `env:"PUSH_NOTIFICATIONS_SERVICE_USER_USERNAME"`
	Password  string `env:"PUSH_NOTIFICATIONS_SERVICE_USER_PASSWORD"`
	TimeoutS  int    `env:"PUSH_NOTIFICATIONS_TIMEOUT_S" env-default:"10"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user_updates"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"development"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
