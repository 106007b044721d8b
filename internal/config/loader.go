package config

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix     = "ANALYZER_"
	EnvConfigFile = "ANALYZER_CONFIG"
)

const keyMetricsLabels = "metrics_labels"

var (
	metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	validate     = newValidator()
)

// newValidator registers metric_name: a Prometheus name or label name that
// does not use the reserved "__" prefix.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return metricNameRe.MatchString(s) && !strings.HasPrefix(s, "__")
	})
	return v
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ANALYZER_CONFIG is set
//  3. env (prefix ANALYZER_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// ANALYZER_LOG_LEVEL -> log_level. Keys stay flat, so the delimiter
	// never splits them.
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(name, value string) (string, any) {
		if name == EnvConfigFile {
			return "", nil
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if key == keyMetricsLabels {
			return key, parseLabels(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy so unset keys keep their defaults.
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// parseLabels turns "env=prod, team=core" into a map. Input with a pair
// lacking "=" or a key is returned unchanged so decoding reports it.
func parseLabels(raw string) any {
	labels := make(map[string]any)
	for pair := range strings.SplitSeq(raw, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return raw
		}
		labels[key] = strings.TrimSpace(value)
	}
	return labels
}
