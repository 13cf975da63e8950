package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	"github.com/periodictables/PT-ReservationService/pkg/types"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Restaurant RestaurantConfig `toml:"restaurant"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
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

// DSN собирает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RestaurantConfig режим работы ресторана: часы приема броней,
// выходной день и режим поиска по номеру телефона
type RestaurantConfig struct {
	OpeningTime     string `toml:"opening_time"`
	ClosingTime     string `toml:"closing_time"`
	ClosedWeekday   string `toml:"closed_weekday"`
	ExactPhoneMatch bool   `toml:"exact_phone_match"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// OperatingHours превращает секцию [restaurant] в доменную модель.
// Пустые значения заменяются значениями по умолчанию.
func (c RestaurantConfig) OperatingHours() (domain.OperatingHours, error) {
	hours := domain.DefaultOperatingHours()

	if c.OpeningTime != "" {
		opening, err := types.NewTimeStringFromString(c.OpeningTime)
		if err != nil {
			return hours, fmt.Errorf("invalid opening_time %q: %w", c.OpeningTime, err)
		}
		hours.Opening = opening
	}

	if c.ClosingTime != "" {
		closing, err := types.NewTimeStringFromString(c.ClosingTime)
		if err != nil {
			return hours, fmt.Errorf("invalid closing_time %q: %w", c.ClosingTime, err)
		}
		hours.Closing = closing
	}

	if c.ClosedWeekday != "" {
		weekday, ok := weekdays[strings.ToLower(c.ClosedWeekday)]
		if !ok {
			return hours, fmt.Errorf("invalid closed_weekday %q", c.ClosedWeekday)
		}
		hours.ClosedWeekday = weekday
	}

	return hours, nil
}

// Load читает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return &cfg, nil
}
