package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv          AppEnv `mapstructure:"app_env"`
		LogLevel        string `mapstructure:"log_level"`
		HTTP            HTTP   `mapstructure:"http"`
		Database        Database
		Kafka           Kafka `mapstructure:"kafka"`
		SMS             SMS   `mapstructure:"sms"`
		DispatchWorkers int   `mapstructure:"dispatch_workers"`
	}

	HTTP struct {
		Port int `mapstructure:"port"`
	}

	Database struct {
		Postgres Postgres `mapstructure:"postgres"`
		Redis    Redis    `mapstructure:"redis"`
	}

	Postgres struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		Database string `mapstructure:"database"`
	}

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Database int    `mapstructure:"database"`
	}

	Kafka struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	}

	// SMS selects and configures the messaging provider. Twilio credentials
	// are injected here, never read from ambient globals.
	SMS struct {
		Provider string `mapstructure:"provider"` // "twilio" or "stub"
		Twilio   Twilio `mapstructure:"twilio"`
	}

	Twilio struct {
		AccountSID string `mapstructure:"account_sid"`
		AuthToken  string `mapstructure:"auth_token"`
		FromNumber string `mapstructure:"from_number"`
	}
)

// Load reads configuration from ./configs/config.yaml (optional) with
// environment-variable override, e.g. DATABASE_POSTGRES_HOST.
func Load() (*Config, error) {
	viper.SetDefault("app_env", string(LocalEnv))
	viper.SetDefault("log_level", "info")
	viper.SetDefault("http.port", 8080)
	viper.SetDefault("database.postgres.host", "localhost")
	viper.SetDefault("database.postgres.port", 5432)
	viper.SetDefault("database.redis.host", "localhost")
	viper.SetDefault("database.redis.port", 6379)
	viper.SetDefault("kafka.host", "localhost")
	viper.SetDefault("kafka.port", 9092)
	viper.SetDefault("sms.provider", "stub")
	viper.SetDefault("dispatch_workers", 4)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// no config file: defaults and env vars carry it
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParsedLogLevel falls back to Info rather than failing startup on a typo.
func (c *Config) ParsedLogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
