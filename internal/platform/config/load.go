package config

import (
	"errors"
	"fmt"
	"io/fs"
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
	defaultConfigDir = "configs"
)

// ErrInvalidProfile is returned by Load for empty profiles, profiles that
// could escape the config directory and profiles with no YAML file.
var ErrInvalidProfile = errors.New("invalid config profile")

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	dir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.dir = dir }
}

// Load builds the configuration for profile from, lowest precedence first:
// built-in defaults, base.yaml, {profile}.yaml and APP_* environment
// variables. The result is validated.
//
// An environment variable is matched against the keys known after the YAML
// layers, so underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT         -> server.read_timeout
//	APP_STORAGE_TABLE_NAME          -> storage.table_name
//	APP_STORAGE_DYNAMODB_ENDPOINT   -> storage.dynamodb.endpoint
//
// Variables that match no key are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{dir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	profilePath := filepath.Join(o.dir, profile+".yaml")
	if _, err := os.Stat(profilePath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q has no %s", ErrInvalidProfile, profile, profilePath)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envProvider maps APP_* variables onto the known dotted keys.
func envProvider(known []string) *env.Env {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			key, ok := byEnvName[strings.ToLower(strings.TrimPrefix(name, envPrefix))]
			if !ok {
				return "", nil
			}
			return key, value
		},
	})
}

func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return fmt.Errorf("%w: empty", ErrInvalidProfile)
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	}
	return nil
}
