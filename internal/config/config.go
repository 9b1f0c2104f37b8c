package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Engine   Engine   `toml:"engine"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Engine настройки движка выдачи слотов. Все значения в минутах.
// Раньше эти константы были зашиты в коде двух путей бронирования —
// теперь они именованные и настраиваются отдельно для каждого пути.
type Engine struct {
	GridStepMinutes       int `toml:"grid_step_minutes"`
	WalkinGridStepMinutes int `toml:"walkin_grid_step_minutes"`
	BookingBufferMinutes  int `toml:"booking_buffer_minutes"`
	WalkinBufferMinutes   int `toml:"walkin_buffer_minutes"`
	OpenGraceMinutes      int `toml:"open_grace_minutes"`
	ListingLeadMinutes    int `toml:"listing_lead_minutes"`
}

// Load читает конфигурацию из TOML файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salonbook-service"
	}

	if c.Engine.GridStepMinutes == 0 {
		c.Engine.GridStepMinutes = domain.DefaultGridStepMinutes
	}
	if c.Engine.WalkinGridStepMinutes == 0 {
		c.Engine.WalkinGridStepMinutes = domain.DefaultWalkinGridStepMinutes
	}
	if c.Engine.BookingBufferMinutes == 0 {
		c.Engine.BookingBufferMinutes = domain.DefaultBookingBufferMinutes
	}
	if c.Engine.WalkinBufferMinutes == 0 {
		c.Engine.WalkinBufferMinutes = domain.DefaultWalkinBufferMinutes
	}
	if c.Engine.OpenGraceMinutes == 0 {
		c.Engine.OpenGraceMinutes = domain.DefaultOpenGraceMinutes
	}
	if c.Engine.ListingLeadMinutes == 0 {
		c.Engine.ListingLeadMinutes = domain.DefaultListingLeadMinutes
	}
}
