package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shkotk/musiclib/common/validation"
)

type Config struct {
	Debug        bool
	LogLevel     string `validate:"loglevel"`
	PGConnString string `validate:"required"`
	Host         string `validate:"omitempty,ip|hostname_rfc1123"`
	Port         int    `validate:"min=1,max=65535"`
	DB           DBConfig
}

type DBConfig struct {
	MaxOpenConns    int           `validate:"min=0"`
	MaxIdleConns    int           `validate:"min=0"`
	ConnMaxLifetime time.Duration `validate:"min=0"`
}

// Address the HTTP listener binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

const (
	defaultLogLevel        = "info"
	defaultHost            = "0.0.0.0"
	defaultPort            = 5001
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = time.Hour
)

// Loads config from environment. Files in pathes are read first with godotenv,
// which never overrides variables that are already set.
func Load(pathes ...string) (Config, error) {
	for _, path := range pathes {
		godotenv.Load(path)
	}

	return Parse(loadEnvsMap())
}

// Builds config from provided key/value pairs and validates it.
func Parse(envs map[string]string) (Config, error) {
	p := parser{envs: envs}

	cfg := Config{
		Debug:        p.getString("DEBUG", "0") == "1",
		LogLevel:     p.getString("LOG_LEVEL", defaultLogLevel),
		PGConnString: p.getRequiredString("PG_CONNECTION_STRING"),
		Host:         p.getString("HOST", defaultHost),
		Port:         p.getInt("PORT", defaultPort),
		DB: DBConfig{
			MaxOpenConns:    p.getInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
			MaxIdleConns:    p.getInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
			ConnMaxLifetime: p.getDuration("DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime),
		},
	}
	if len(p.errs) > 0 {
		return Config{}, errors.Join(p.errs...)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("loglevel", validation.IsValidLogLevel)
	return v
}

func loadEnvsMap() map[string]string {
	envs := os.Environ()
	envsMap := make(map[string]string, len(envs))
	for _, env := range envs {
		i := strings.IndexRune(env, '=')
		envsMap[env[:i]] = env[i+1:]
	}

	return envsMap
}

// Collects every parsing problem so all of them are reported at once.
type parser struct {
	envs map[string]string
	errs []error
}

func (p *parser) getDuration(key string, fallback time.Duration) time.Duration {
	s := p.envs[key]
	if s == "" {
		return fallback
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf(`can't parse duration from "%s" config value '%s': %w`, key, s, err))
		return fallback
	}

	return d
}

func (p *parser) getInt(key string, fallback int) int {
	s := p.envs[key]
	if s == "" {
		return fallback
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf(`can't parse integer from "%s" config value '%s': %w`, key, s, err))
		return fallback
	}

	return i
}

func (p *parser) getRequiredString(key string) string {
	value := p.envs[key]
	if value == "" {
		p.errs = append(p.errs, fmt.Errorf(`"%s" config is required, but was empty or missing`, key))
	}

	return value
}

func (p *parser) getString(key, fallback string) string {
	if value := p.envs[key]; value != "" {
		return value
	}

	return fallback
}
