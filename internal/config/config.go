package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Moscow"`
		Location *time.Location
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"checkout:checkout"`
		BasicClients       []ConfigBasicClient
	}

	Settings struct {
		Path string        `env:"SETTINGS_PATH" envDefault:"settings.yaml"`
		TTL  time.Duration `env:"SETTINGS_TTL" envDefault:"30m"`
	}

	MoySklad struct {
		URL   string `env:"MOYSKLAD_URL" envDefault:"https://api.moysklad.ru/api/remap/1.2"`
		Token string `env:"MOYSKLAD_TOKEN"`
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"delivery-slots-svc.settings"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"woocommerce"`
		Bind     string `env:"RABBITMQ_BIND" envDefault:"*.delivery-slots-svc.#"`
	}

	Cache struct {
		Enabled   bool `env:"CACHE_ENABLED"`
		SlotsSize int  `env:"CACHE_SLOTS_SIZE" envDefault:"1000"`
	}

	RateLimit struct {
		PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"200"`
		Burst     int `env:"RATE_LIMIT_BURST" envDefault:"50"`
		Clients   int `env:"RATE_LIMIT_CLIENTS" envDefault:"10000"`
	}
}

func NewConfig() (*Config, error) {
	// .env необязателен, переменные окружения могут прийти снаружи
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.Local
	}
	cfg.App.Location = loc

	cfg.Auth.BasicClients = parseBasicClients(cfg.Auth.BasicClientsString)

	// Если RabbitMQ не включен, то кэш тоже не включаем
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func parseBasicClients(raw string) []ConfigBasicClient {
	clients := []ConfigBasicClient{}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) == 2 && parts[0] != "" {
			clients = append(clients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}
	return clients
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
