package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Database *DatabaseConfig `mapstructure:"database"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Seating  *SeatingConfig  `mapstructure:"seating"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"` // "postgres" or "sqlite"
	SQLitePath string `mapstructure:"sqlite_path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

type SeatingConfig struct {
	SavedFlagTTL      time.Duration     `mapstructure:"saved_flag_ttl"`
	DefaultDecoration DecorationDefault `mapstructure:"default_decoration"`
}

type DecorationDefault struct {
	Tablecloth  string `mapstructure:"tablecloth"`
	NapkinColor string `mapstructure:"napkin_color"`
	Centerpiece string `mapstructure:"centerpiece"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.sqlite_path", "planner.db")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "lasrocas")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("seating.saved_flag_ttl", "3s")
	v.SetDefault("seating.default_decoration.tablecloth", "")
	v.SetDefault("seating.default_decoration.napkin_color", "")
	v.SetDefault("seating.default_decoration.centerpiece", "")
}

// Load reads the yaml file at path. Every key can be overridden from the environment,
// e.g. API_PORT or POSTGRES_PASSWORD. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
		found = false
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	// Settings are read once at startup; a change only gets logged.
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Has(fsnotify.Write) {
			zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name))
		}
	})
	if found {
		v.WatchConfig()
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.API, validation.Required),
		validation.Field(&c.Gin, validation.Required),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.Postgres, validation.Required),
		validation.Field(&c.Seating, validation.Required),
	)
}

func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment, validation.Required, validation.In("development", "production", "test")),
		validation.Field(&c.Port, validation.Required),
	)
}

func (c *GinConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In("debug", "release", "test")),
	)
}

func (c *DatabaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverPostgres, DriverSQLite)),
		validation.Field(&c.SQLitePath, validation.By(func(interface{}) error {
			if c.Driver == DriverSQLite && strings.TrimSpace(c.SQLitePath) == "" {
				return errors.New("cannot be blank when driver is sqlite")
			}
			return nil
		})),
	)
}

func (c *SeatingConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SavedFlagTTL, validation.Min(time.Duration(0))),
	)
}
