package appconf

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/LHMTR/haruto-information/internal/multilingual"
)

// EnvPrefix prefixes the environment variables that override file settings.
const EnvPrefix = "LINEINFO_"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps an --env value onto an Environment. Unknown
// values are treated as development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds every setting of the application.
type Config struct {
	Port int `koanf:"port"`

	// EnvName is the raw environment name; use Env for the parsed value.
	EnvName string      `koanf:"env"`
	Env     Environment `koanf:"-"`

	// DataSource is a directory or an http(s) base URL holding index.json
	// and one <line_code>.json per line.
	DataSource      string `koanf:"data"`
	DefaultLanguage string `koanf:"default_lang"`

	// RateLimit is the number of requests per second allowed per client.
	RateLimit int    `koanf:"rate_limit"`
	OutputDir string `koanf:"output_dir"`
	LogLevel  string `koanf:"log_level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Port:            4000,
		EnvName:         "development",
		Env:             Development,
		DataSource:      "information",
		DefaultLanguage: multilingual.DefaultLanguage.Code(),
		RateLimit:       100,
		OutputDir:       "public",
		LogLevel:        "info",
	}
}

// Load reads the YAML file at path when it exists, then overlays LINEINFO_*
// environment variables (LINEINFO_DEFAULT_LANG -> default_lang).
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)
	return cfg, nil
}

// Language returns the configured default reader language.
func (c Config) Language() multilingual.Language {
	lang, ok := multilingual.ParseLanguage(c.DefaultLanguage)
	if !ok {
		return multilingual.DefaultLanguage
	}
	return lang
}

// Validate checks that the configuration contains usable values.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DataSource == "" {
		return fmt.Errorf("data source is required")
	}
	if c.DefaultLanguage != "" {
		if _, ok := multilingual.ParseLanguage(c.DefaultLanguage); !ok {
			return fmt.Errorf("unsupported default language %q", c.DefaultLanguage)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be non-negative")
	}
	return nil
}
