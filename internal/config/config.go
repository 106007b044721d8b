// Package config defines analyzer configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat selects the stderr log encoding: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// FloatPrecision is the number of decimals used when rendering floats.
	FloatPrecision int `koanf:"float_precision" validate:"min=0,max=10"`

	// MetricsFile, when set, receives a Prometheus textfile snapshot after each run.
	MetricsFile string `koanf:"metrics_file"`

	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string `koanf:"metrics_namespace" validate:"metric_name"`

	// MetricsLabels are constant labels added to every series. From the
	// environment they are given as "key=value,key=value".
	MetricsLabels map[string]string `koanf:"metrics_labels" validate:"omitempty,dive,keys,metric_name,endkeys"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "warn",
		LogFormat:      "text",
		FloatPrecision: 2,
		MetricsFile:    "",

		MetricsNamespace: "analyzer",
	}
}
