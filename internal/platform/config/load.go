package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envConfigDir     = "APP_CONFIG_DIR"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// It wins over APP_CONFIG_DIR, which wins over "configs".
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration from, lowest precedence first: built-in
// defaults, {dir}/base.yaml, {dir}/{profile}.yaml and APP_* variables.
//
// An environment variable is matched against the keys the earlier layers
// defined, so underscores inside a key name survive:
//
//	APP_SERVER_WRITE_TIMEOUT    -> server.write_timeout
//	APP_SESSION_IDLE_TIMEOUT    -> session.idle_timeout
//	APP_SITE_PDF_FILE_NAME      -> site.pdf.file_name
//	APP_SECURITY_CSRF_KEY       -> security.csrf_key
//
// Unmatched variables fall back to one level per underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	if dir := os.Getenv(envConfigDir); dir != "" {
		o.configDir = dir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for profile %q: %w", profile, err)
	}
	return &cfg, nil
}

// validateProfile accepts short names of lowercase letters, digits and '-',
// which keeps the profile from escaping the config directory.
func validateProfile(profile string) error {
	if profile == "" {
		return errors.New("profile must not be empty")
	}
	for _, c := range profile {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("profile %q: only lowercase letters, digits and '-' are allowed", profile)
		}
	}
	return nil
}

// envKeys maps the underscore form of every known key ("server_write_timeout")
// back to its dotted form.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}
