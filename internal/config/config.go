// Package config loads the settings document that drives a graph run.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ethanolivertroy/aptgraph/internal/models"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingPath is returned when no settings document path is given.
	ErrMissingPath = errors.New("config path is empty")

	// ErrInvalid wraps validation failures of a loaded configuration.
	ErrInvalid = errors.New("invalid config")
)

var validate = validator.New()

// fileConfig mirrors the on-disk settings document. MaxDepth is a pointer so
// an explicit 0 can be told apart from an absent key.
type fileConfig struct {
	GraphToolPath    string   `json:"graph_tool_path" toml:"graph_tool_path" yaml:"graph_tool_path"`
	PackageName      string   `json:"package_name" toml:"package_name" yaml:"package_name"`
	OutputFile       string   `json:"output_file" toml:"output_file" yaml:"output_file"`
	MaxDepth         *int     `json:"max_depth" toml:"max_depth" yaml:"max_depth"`
	RepositoryURL    string   `json:"repository_url" toml:"repository_url" yaml:"repository_url"`
	QueryCommand     []string `json:"query_command" toml:"query_command" yaml:"query_command"`
	DependencyLabels []string `json:"dependency_labels" toml:"dependency_labels" yaml:"dependency_labels"`
	QueryTimeout     string   `json:"query_timeout" toml:"query_timeout" yaml:"query_timeout"`
}

// Load reads, decodes and validates the settings document at path. The
// format is picked from the extension: .toml, .yaml/.yml, anything else JSON.
func Load(path string) (*models.Config, error) {
	if path == "" {
		return nil, ErrMissingPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	fc, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg, err := fc.toConfig()
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks a configuration against its struct constraints.
func Validate(cfg *models.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func decode(path string, data []byte) (*fileConfig, error) {
	var fc fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	}

	return &fc, nil
}

func (fc *fileConfig) toConfig() (*models.Config, error) {
	cfg := models.DefaultConfig()

	cfg.PackageName = fc.PackageName
	cfg.OutputFile = fc.OutputFile
	cfg.GraphToolPath = fc.GraphToolPath
	cfg.RepositoryURL = fc.RepositoryURL

	if fc.MaxDepth != nil {
		cfg.MaxDepth = *fc.MaxDepth
	}
	if len(fc.QueryCommand) > 0 {
		cfg.QueryCommand = fc.QueryCommand
	}
	if len(fc.DependencyLabels) > 0 {
		cfg.DependencyLabels = fc.DependencyLabels
	}

	if fc.QueryTimeout != "" {
		timeout, err := time.ParseDuration(fc.QueryTimeout)
		if err != nil {
			return nil, fmt.Errorf("%w: query_timeout: %v", ErrInvalid, err)
		}
		cfg.QueryTimeout = timeout
	}

	return cfg, nil
}
