package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	FulfillmentSync  = "sync"
	FulfillmentQueue = "queue"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"    validate:"required"`
	MoMo        MoMoConfig        `yaml:"momo"        validate:"required"`
	Mail        MailConfig        `yaml:"mail"        validate:"required"`
	Webhook     WebhookConfig     `yaml:"webhook"     validate:"required"`
	Fulfillment FulfillmentConfig `yaml:"fulfillment" validate:"required"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Redis       RedisConfig       `yaml:"redis"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	CORS        CORSConfig        `yaml:"cors"`
}

type ServerConfig struct {
	Addr          string        `yaml:"addr"            env:"SERVER_ADDR"          env-default:":5000" validate:"required"`
	PublicBaseURL string        `yaml:"public_base_url" env:"BACKEND_URL"          env-default:"http://localhost:5000" validate:"required,url"`
	ReadTimeout   time.Duration `yaml:"read_timeout"    env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout  time.Duration `yaml:"write_timeout"   env:"SERVER_WRITE_TIMEOUT" env-default:"45s"   validate:"gt=0"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"    env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel converts the configured level into a wbf logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"kiddovents" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// MoMoConfig holds the collection API credentials. Empty credentials are
// allowed at start-up; payment initiation then reports the gateway as not
// configured.
type MoMoConfig struct {
	Environment       string        `yaml:"environment"        env:"MOMO_ENVIRONMENT"        env-default:"sandbox" validate:"required,oneof=sandbox production"`
	BaseURL           string        `yaml:"base_url"           env:"MOMO_BASE_URL"           validate:"omitempty,url"`
	APIUser           string        `yaml:"api_user"           env:"MOMO_API_USER"`
	APIKey            string        `yaml:"api_key"            env:"MOMO_API_KEY"`
	SubscriptionKey   string        `yaml:"subscription_key"   env:"MOMO_SUBSCRIPTION_KEY"`
	TargetEnvironment string        `yaml:"target_environment" env:"MOMO_TARGET_ENVIRONMENT" env-default:"mtnghana"`
	Currency          string        `yaml:"currency"           env:"MOMO_CURRENCY"           env-default:"EUR"     validate:"required,len=3"`
	Timeout           time.Duration `yaml:"timeout"            env:"MOMO_TIMEOUT"            env-default:"15s"     validate:"gt=0"`
}

type MailConfig struct {
	Host     string        `yaml:"host"     env:"SMTP_HOST"          env-default:"smtp.gmail.com" validate:"required"`
	Port     int           `yaml:"port"     env:"SMTP_PORT"          env-default:"587"            validate:"required,min=1,max=65535"`
	Username string        `yaml:"username" env:"GMAIL_USER"`
	Password string        `yaml:"password" env:"GMAIL_APP_PASSWORD"`
	From     string        `yaml:"from"     env:"MAIL_FROM"`
	Timeout  time.Duration `yaml:"timeout"  env:"SMTP_TIMEOUT"       env-default:"20s"            validate:"gt=0"`
}

type WebhookConfig struct {
	Path   string `yaml:"path"   env:"WEBHOOK_PATH"   env-default:"/webhook/momo" validate:"required,startswith=/"`
	Secret string `yaml:"secret" env:"WEBHOOK_SECRET" validate:"required,min=16"`
}

type FulfillmentConfig struct {
	Mode    string        `yaml:"mode"    env:"FULFILLMENT_MODE"    env-default:"sync" validate:"required,oneof=sync queue"`
	Timeout time.Duration `yaml:"timeout" env:"FULFILLMENT_TIMEOUT" env-default:"30s"  validate:"gt=0"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"kiddovents"`
	Queue    string `yaml:"queue"    env:"RABBITMQ_QUEUE"    env-default:"kiddovents.tickets"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
}

// CallbackURL is the settlement callback handed to the gateway. It carries
// the webhook token so the provider's unsigned callbacks authenticate.
func (c *Config) CallbackURL() string {
	q := url.Values{}
	q.Set("token", c.Webhook.Secret)
	return strings.TrimRight(c.Server.PublicBaseURL, "/") + c.Webhook.Path + "?" + q.Encode()
}

func (c *Config) validate() error {
	if c.Fulfillment.Mode == FulfillmentQueue && c.RabbitMQ.URL == "" {
		return fmt.Errorf("fulfillment mode %q requires RABBITMQ_URL", FulfillmentQueue)
	}
	return nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}
