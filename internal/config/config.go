package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	Mailer   MailerConfig   `toml:"mailer"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор хранилища бронирований
// "memory" - процессное in-memory хранилище (по умолчанию)
// "postgres" - PostgreSQL, инвариант уникальности слота обеспечивает
// уникальный индекс (booking_date, start_time)
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки подключения к PostgreSQL
// Используется только при storage.driver = "postgres"
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// BookingConfig настройки подсистемы бронирования
type BookingConfig struct {
	// TimeSlots канонический набор времен слотов, контракт с фронтендом
	// Конфигурация, а не производное от бронирований
	TimeSlots []string `toml:"time_slots"`
}

// AdminConfig настройки доступа к административным эндпоинтам
type AdminConfig struct {
	Token string `toml:"token"`
}

// MailerConfig настройки email-уведомлений
type MailerConfig struct {
	BaseURL           string `toml:"base_url"`
	APIKey            string `toml:"api_key"`
	Timeout           int    `toml:"timeout"` // секунды
	SenderEmail       string `toml:"sender_email"`
	SenderName        string `toml:"sender_name"`
	NotificationEmail string `toml:"notification_email"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла
// Секреты (токен администратора, ключ почтового API, пароль БД) могут
// переопределяться переменными окружения ADMIN_TOKEN, MAILER_API_KEY,
// DB_PASSWORD
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Переопределения из окружения
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.Admin.Token = v
	}
	if v := os.Getenv("MAILER_API_KEY"); v != "" {
		cfg.Mailer.APIKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}

	switch c.Storage.Driver {
	case "", "memory", "postgres":
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	// Канонический набор слотов должен быть валидным временем HH:MM
	for _, slot := range c.Booking.TimeSlots {
		if _, err := types.NewTimeStringFromString(slot); err != nil {
			return fmt.Errorf("config: invalid booking.time_slots entry %q: %w", slot, err)
		}
	}

	return nil
}

// TimeSlotList возвращает канонический набор слотов как []types.TimeString
// Порядок сохраняется как в конфигурации; при пустой конфигурации
// действует набор по умолчанию
func (c *Config) TimeSlotList() []types.TimeString {
	if len(c.Booking.TimeSlots) == 0 {
		return domain.DefaultTimeSlots
	}

	slots := make([]types.TimeString, 0, len(c.Booking.TimeSlots))
	for _, s := range c.Booking.TimeSlots {
		slots = append(slots, types.TimeString(s))
	}
	return slots
}
