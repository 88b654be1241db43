// Package config loads and validates the analysis configuration.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// BuildConfig controls co-occurrence graph construction
type BuildConfig struct {
	MinCollaborations int `yaml:"min_collaborations" validate:"min=1"`
	MinCooccurrence   int `yaml:"min_cooccurrence" validate:"min=1"`
}

// MetricsConfig controls the structural metrics pass
type MetricsConfig struct {
	CentralityMaxNodes    int     `yaml:"centrality_max_nodes" validate:"min=1"`
	EigenvectorIterations int     `yaml:"eigenvector_iterations" validate:"min=1"`
	EigenvectorTolerance  float64 `yaml:"eigenvector_tolerance" validate:"gt=0"`
}

// CommunityConfig controls community detection
type CommunityConfig struct {
	DisableLouvain bool `yaml:"disable_louvain"`
	TopMembers     int  `yaml:"top_members" validate:"min=1"`
}

// ExportConfig controls result serialization
type ExportConfig struct {
	Directory string   `yaml:"directory" validate:"required"`
	Compress  bool     `yaml:"compress"`
	S3        S3Config `yaml:"s3"`
}

// S3Config holds optional object-storage upload settings. Uploads are
// enabled when Bucket is non-empty.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Prefix    string `yaml:"prefix"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// CorpusConfig selects the paper source. Path loads a JSON file; DSN
// loads from Postgres. Exactly one should be set.
type CorpusConfig struct {
	Path string `yaml:"path"`
	DSN  string `yaml:"dsn"`
}

// Config is the root configuration for an analysis run
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Build     BuildConfig     `yaml:"build"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Community CommunityConfig `yaml:"community"`
	Export    ExportConfig    `yaml:"export"`
	LogLevel  string          `yaml:"log_level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	HTTPAddr  string          `yaml:"http_addr"`
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			MinCollaborations: 1,
			MinCooccurrence:   2,
		},
		Metrics: MetricsConfig{
			CentralityMaxNodes:    1000,
			EigenvectorIterations: 100,
			EigenvectorTolerance:  1e-6,
		},
		Community: CommunityConfig{
			TopMembers: 10,
		},
		Export: ExportConfig{
			Directory: "results",
		},
		LogLevel: "INFO",
	}
}

// Load reads a YAML configuration file on top of the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	if c.Corpus.Path != "" && c.Corpus.DSN != "" {
		return fmt.Errorf("corpus: path and dsn are mutually exclusive")
	}

	if c.Export.S3.Bucket != "" && c.Export.S3.Region == "" {
		return fmt.Errorf("export.s3: region is required when bucket is set")
	}

	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
