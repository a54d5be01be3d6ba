package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID     key = "uuid"
	KeyIdentity key = "identity"
	KeyLogger   key = "logger"
	KeyMetrics  key = "metrics"
)

type Config struct {
	Service    Service
	Platform   Platform
	Postgres   ReadEnvPostgres
	Logger     Logger
	Metrics    Metrics
	Kafka      Kafka
	Centrifuge Centrifuge
	Auth       Auth
	Realtime   Realtime
	CORS       CORS
}

type Service struct {
	Port string `yaml:"port" env:"SERVICE_PORT" env-default:"8080"`
	Name string `yaml:"name" env:"SERVICE_NAME" env-default:"community-service"`
}

type Platform struct {
	Env string `yaml:"env" env:"ENV" env-default:"dev"`
}

type ReadEnvPostgres struct {
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"POSTGRES_DB"`
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `yaml:"host" env:"LOGGER_SERVICE_HOST"`
	Port string `yaml:"port" env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `yaml:"host" env:"GRAFANA_HOST"`
	Port int    `yaml:"port" env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host        string `yaml:"host" env:"KAFKA_HOST"`
	Port        string `yaml:"port" env:"KAFKA_PORT"`
	SignInTopic string `yaml:"sign_in_topic" env:"KAFKA_SIGN_IN_TOPIC" env-default:"identity.sign-in"`
}

type Centrifuge struct {
	BaseURL   string        `yaml:"base_url" env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `yaml:"api_key" env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `yaml:"jwt_secret" env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `yaml:"timeout" env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER"`
}

type Realtime struct {
	NotifyChannel        string        `yaml:"notify_channel" env:"REALTIME_NOTIFY_CHANNEL" env-default:"topic_messages"`
	MinReconnectInterval time.Duration `yaml:"min_reconnect_interval" env:"REALTIME_MIN_RECONNECT" env-default:"1s"`
	MaxReconnectInterval time.Duration `yaml:"max_reconnect_interval" env:"REALTIME_MAX_RECONNECT" env-default:"30s"`
	HeartbeatInterval    time.Duration `yaml:"heartbeat_interval" env:"REALTIME_HEARTBEAT" env-default:"30s"`
	SubscriberBuffer     int           `yaml:"subscriber_buffer" env:"REALTIME_SUBSCRIBER_BUFFER" env-default:"64"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// MustLoad reads CONFIG_PATH when it is set and falls back to the environment otherwise.
func MustLoad() *Config {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			log.Fatalf("failed to read config %s: %v", path, err)
		}
		return cfg
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env: %v", err)
	}

	return cfg
}
