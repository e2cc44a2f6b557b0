package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BookABite/reservation-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig      `toml:"server"`
	Database     DatabaseConfig    `toml:"database"`
	Logs         LogsConfig        `toml:"logs"`
	Metrics      MetricsConfig     `toml:"metrics"`
	GroupService IntegrationConfig `toml:"group_service"`
	Notifier     IntegrationConfig `toml:"notifier"`
	Booking      BookingPolicy     `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки внешнего HTTP клиента
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// BookingPolicy бизнес-политика бронирований.
// Границы применяются при валидации запроса на бронирование.
type BookingPolicy struct {
	MinDurationMinutes     int `toml:"min_duration_minutes"`
	MaxDurationMinutes     int `toml:"max_duration_minutes"`
	MaxPartySize           int `toml:"max_party_size"`
	SlotGranularityMinutes int `toml:"slot_granularity_minutes"`
	MinNoticeMinutes       int `toml:"min_notice_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию со значениями по умолчанию,
// отдельные секции могут быть переопределены в файле
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "reservation-service",
		},
		Booking: BookingPolicy{
			MinDurationMinutes:     domain.DefaultMinDurationMinutes,
			MaxDurationMinutes:     domain.DefaultMaxDurationMinutes,
			MaxPartySize:           domain.DefaultMaxPartySize,
			SlotGranularityMinutes: domain.DefaultSlotGranularityMinutes,
			MinNoticeMinutes:       domain.DefaultMinNoticeMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Booking.MinDurationMinutes <= 0 {
		return fmt.Errorf("config: booking.min_duration_minutes must be positive")
	}
	if c.Booking.MaxDurationMinutes < c.Booking.MinDurationMinutes {
		return fmt.Errorf("config: booking.max_duration_minutes must be >= min_duration_minutes")
	}
	if c.Booking.MaxPartySize < domain.MinPartySize {
		return fmt.Errorf("config: booking.max_party_size must be >= %d", domain.MinPartySize)
	}
	if c.Booking.SlotGranularityMinutes < domain.MinGranularityMinutes ||
		c.Booking.SlotGranularityMinutes > domain.MaxGranularityMinutes {
		return fmt.Errorf("config: booking.slot_granularity_minutes must be within [%d, %d]",
			domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}
	if c.Booking.MinNoticeMinutes < 0 {
		return fmt.Errorf("config: booking.min_notice_minutes must not be negative")
	}
	return nil
}
