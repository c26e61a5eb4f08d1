package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// listKeys take comma-separated values from the environment.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides sets dotted keys above every other source, for values that
// come from command-line flags:
//
//	config.WithOverrides(map[string]any{"client.base_url": url})
//
// Overrides are validated with the rest of the config.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// layer is one configuration source. Later layers win.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from, lowest precedence first:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_ environment variables
//  5. WithOverrides values
//
// Environment names are matched against the keys already loaded, so
// underscores inside a field name survive:
//
//	APP_SERVER_PORT                          -> server.port
//	APP_DATABASE_MAX_CONN_IDLE_TIME          -> database.max_conn_idle_time
//	APP_RESILIENCE_COMMAND_RETRY_MAX_RETRIES -> resilience.command.retry.max_retries
//
// Unknown names fall back to replacing every underscore with a dot.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	basePath := filepath.Join(o.configDir, "base.yaml")
	profilePath := filepath.Join(o.configDir, profile+".yaml")

	layers := []layer{
		{"defaults", func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(defaults(), "."), nil)
		}},
		{"base config " + basePath, func(k *koanf.Koanf) error {
			return k.Load(file.Provider(basePath), yaml.Parser())
		}},
		{"profile config " + profilePath, func(k *koanf.Koanf) error {
			return k.Load(file.Provider(profilePath), yaml.Parser())
		}},
		{"env vars", loadEnv},
	}
	if len(o.overrides) > 0 {
		layers = append(layers, layer{"overrides", func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(o.overrides, "."), nil)
		}})
	}

	k := koanf.New(".")
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadEnv maps APP_ variables onto the keys k already holds.
func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))

			key, ok := known[name]
			if !ok {
				return strings.ReplaceAll(name, "_", "."), value
			}
			if listKeys[key] {
				return key, strings.Split(value, ",")
			}
			return key, value
		},
	}), nil)
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	default:
		return nil
	}
}
