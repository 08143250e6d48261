package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/logfields"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFor picks the syntax from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.ConfigError(errors.CodeInvalidConfig, "unsupported configuration file extension").
			WithContext("path", path).
			WithContext("supported", ".yaml, .yml, .toml, .json").
			Build()
	}
}

// envFiles are read, in order, before the configuration is expanded.
var envFiles = []string{".env", ".env.local"}

// Load reads, expands, decodes, normalizes, defaults and validates the
// configuration at path.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file not found").
				WithCause(err).
				WithContext("path", path).
				UserAction().
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))), format)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes an already expanded document and runs normalization,
// defaults and validation.
func Parse(data []byte, format Format) (*Config, error) {
	cfg, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	res, err := Normalize(cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		slog.Warn("config normalization", slog.String("detail", w))
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode rejects keys the Config model does not declare, in every format.
func decode(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err == io.EOF {
			err = nil
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	default:
		return nil, errors.ConfigError(errors.CodeInvalidConfig, fmt.Sprintf("unsupported configuration format %q", format)).Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryParse, fmt.Sprintf("failed to decode %s config", format)).
			UserAction().
			Build()
	}
	return &cfg, nil
}

// loadEnvFiles loads each .env file that exists. Variables already present
// in the environment are kept.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("failed to load env file", logfields.File(name), logfields.Error(err))
			continue
		}
		slog.Debug("loaded environment variables", logfields.File(name))
	}
}
