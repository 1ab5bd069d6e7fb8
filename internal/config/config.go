package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// Драйверы хранилища бронирований
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Clinic   ClinicConfig   `toml:"clinic"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор реализации хранилища бронирований
type StorageConfig struct {
	// Driver: "memory" (по умолчанию, данные живут до перезапуска процесса)
	// или "postgres"
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки подключения к PostgreSQL (для driver = "postgres")
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

// ClinicConfig рабочие часы клиники и шаг сетки слотов
type ClinicConfig struct {
	OpenTime            string `toml:"open_time"`
	CloseTime           string `toml:"close_time"`
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла.
// Перед чтением подхватывает .env (если есть): переменные окружения
// SCHEDULER_DB_PASSWORD и SCHEDULER_DB_HOST перекрывают значения из файла,
// чтобы не хранить креды БД в config.toml.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if v := os.Getenv("SCHEDULER_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SCHEDULER_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "smc-clinic-scheduler",
			Path:        "/metrics",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Clinic: ClinicConfig{
			OpenTime:            domain.DefaultOpenTime,
			CloseTime:           domain.DefaultCloseTime,
			SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Storage.Driver != StorageMemory && c.Storage.Driver != StoragePostgres {
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.Driver == StoragePostgres {
		if c.Database.User == "" || c.Database.DBName == "" {
			return errors.New("config: database user and dbname are required for postgres storage")
		}
	}

	openTime, err := types.NewTimeStringFromString(c.Clinic.OpenTime)
	if err != nil {
		return fmt.Errorf("config: invalid clinic.open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(c.Clinic.CloseTime)
	if err != nil {
		return fmt.Errorf("config: invalid clinic.close_time: %w", err)
	}
	if !openTime.IsBefore(closeTime) {
		return errors.New("config: clinic.open_time must be before clinic.close_time")
	}

	// Сохраняем нормализованную форму: ClinicHours отдает значения как есть
	c.Clinic.OpenTime = openTime.String()
	c.Clinic.CloseTime = closeTime.String()

	if c.Clinic.SlotIntervalMinutes <= 0 {
		return errors.New("config: clinic.slot_interval_minutes must be positive")
	}

	return nil
}

// ClinicHours возвращает распарсенные рабочие часы.
// Валидность гарантирована validate() при загрузке.
func (c *ClinicConfig) ClinicHours() (open, close types.TimeString) {
	return types.TimeString(c.OpenTime), types.TimeString(c.CloseTime)
}
