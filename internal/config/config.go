package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreLog    = "log"
	StoreMySQL  = "mysql"
	StoreSQLite = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Store    StoreConfig
	Database DatabaseConfig
	Session  SessionConfig
	Delivery DeliveryConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port int
}

type LogConfig struct {
	Level string
}

type CatalogConfig struct {
	// Path to a YAML catalog. Empty means the built-in content.
	Path string
}

type StoreConfig struct {
	Kind       string
	SQLitePath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SessionConfig struct {
	Cookie        string
	TTL           time.Duration
	SweepInterval time.Duration
	Max           int
}

type DeliveryConfig struct {
	Timeout     time.Duration
	MaxAttempts int
}

type MailConfig struct {
	Domain      string
	APIKey      string
	FromAddress string
	FromName    string
	NotifyTo    string
}

// Enabled reports whether order notifications can be sent. Mailgun rejects
// messages without a sender, so FromAddress is required too.
func (m MailConfig) Enabled() bool {
	return m.Domain != "" && m.APIKey != "" && m.FromAddress != "" && m.NotifyTo != ""
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("ORDER_STORE", StoreLog)
	viper.SetDefault("SQLITE_PATH", "tapconnect.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "tapconnect")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "tapconnect")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("SESSION_COOKIE", "tapconnect_session")
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	viper.SetDefault("SESSION_MAX", 10000)
	viper.SetDefault("DELIVERY_TIMEOUT", "5s")
	viper.SetDefault("DELIVERY_MAX_ATTEMPTS", 3)
	viper.SetDefault("MAILGUN_DOMAIN", "")
	viper.SetDefault("MAILGUN_API_KEY", "")
	viper.SetDefault("EMAIL_FROM_ADDRESS", "")
	viper.SetDefault("EMAIL_FROM_NAME", "TapConnect")
	viper.SetDefault("ORDER_NOTIFY_EMAIL", "")

	connMaxLifetime, err := duration("DB_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}
	sessionTTL, err := duration("SESSION_TTL")
	if err != nil {
		return nil, err
	}
	sweepInterval, err := duration("SESSION_SWEEP_INTERVAL")
	if err != nil {
		return nil, err
	}
	deliveryTimeout, err := duration("DELIVERY_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Store: StoreConfig{
			Kind:       viper.GetString("ORDER_STORE"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Session: SessionConfig{
			Cookie:        viper.GetString("SESSION_COOKIE"),
			TTL:           sessionTTL,
			SweepInterval: sweepInterval,
			Max:           viper.GetInt("SESSION_MAX"),
		},
		Delivery: DeliveryConfig{
			Timeout:     deliveryTimeout,
			MaxAttempts: viper.GetInt("DELIVERY_MAX_ATTEMPTS"),
		},
		Mail: MailConfig{
			Domain:      viper.GetString("MAILGUN_DOMAIN"),
			APIKey:      viper.GetString("MAILGUN_API_KEY"),
			FromAddress: viper.GetString("EMAIL_FROM_ADDRESS"),
			FromName:    viper.GetString("EMAIL_FROM_NAME"),
			NotifyTo:    viper.GetString("ORDER_NOTIFY_EMAIL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Kind {
	case StoreLog, StoreMySQL, StoreSQLite:
	default:
		return fmt.Errorf("ORDER_STORE must be one of %s, %s, %s: got %q", StoreLog, StoreMySQL, StoreSQLite, c.Store.Kind)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Session.Max < 1 {
		return fmt.Errorf("SESSION_MAX must be at least 1")
	}
	if c.Delivery.MaxAttempts < 1 {
		return fmt.Errorf("DELIVERY_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

func duration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}
