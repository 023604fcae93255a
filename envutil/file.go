package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envFile is the shape shared by all supported formats: a top-level "env"
// table of string values.
//
//	env:
//	  LOG_LEVEL: debug
//	  SORTBENCH_SIZE: "5000"
type envFile struct {
	Env map[string]string `json:"env" toml:"env" yaml:"env"`
}

// LoadEnvFile reads variables from a .json, .yaml/.yml or .toml file.
func LoadEnvFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(bts, &out)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(bts, &out)
	case ".toml":
		err = toml.Unmarshal(bts, &out)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}

	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", path, err)
	}

	return out.Env, nil
}

// WithEnvFile loads path and installs its variables as context overrides.
func WithEnvFile(ctx context.Context, path string) (context.Context, error) {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return ctx, err
	}

	return WithEnvOverrides(ctx, vars), nil
}
