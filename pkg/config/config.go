// pkg/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config - главная структура конфигурации
type Config struct {
	App     AppConfig     `koanf:"app"`
	Log     LogConfig     `koanf:"log"`
	Cache   CacheConfig   `koanf:"cache"`
	Metrics MetricsConfig `koanf:"metrics"`
	Search  SearchConfig  `koanf:"search"`
}

// AppConfig - общие настройки приложения
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
	Debug       bool   `koanf:"debug"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`   // путь к файлу логов
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"` // количество бэкапов
	MaxAge     int    `koanf:"max_age"`     // дней
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig - настройки Prometheus метрик
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Port      int    `koanf:"port"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// CacheConfig - настройки кэширования результатов поиска маршрута
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Driver     string        `koanf:"driver"` // redis, memory
	Host       string        `koanf:"host"`
	Port       int           `koanf:"port"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db"`
	DefaultTTL time.Duration `koanf:"default_ttl"`
	MaxEntries int           `koanf:"max_entries"` // для in-memory
}

// Address возвращает адрес кэша
func (c CacheConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SearchConfig - параметры поиска маршрута по умолчанию и его ограничители
type SearchConfig struct {
	DefaultTankCapacity string `koanf:"default_tank_capacity"` // decimal literal, fuel units
	DefaultMinVolume    string `koanf:"default_min_volume"`    // decimal literal, fuel units
	DefaultMpg          string `koanf:"default_mpg"`           // decimal literal, map-units per fuel unit
	MaxExtensions       int    `koanf:"max_extensions"`        // validated as non-negative only; the search does not read it and is always unbounded
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	var errs []string

	if c.App.Name == "" {
		errs = append(errs, "app.name is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	if c.Cache.Driver != "" && c.Cache.Driver != "redis" && c.Cache.Driver != "memory" {
		errs = append(errs, fmt.Sprintf("cache.driver must be one of: redis, memory, got %s", c.Cache.Driver))
	}

	if c.Search.MaxExtensions < 0 {
		errs = append(errs, "search.max_extensions must be non-negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// IsDevelopment проверяет режим разработки
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "dev"
}

// IsProduction проверяет продакшн режим
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production" || c.App.Environment == "prod"
}
