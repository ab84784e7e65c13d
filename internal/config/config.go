// Package config loads catalogue.yaml: file locations, pacing and slug
// settings shared by every command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/roach88/catalogue/internal/slug"
)

// DefaultPath is where the CLI looks for a config file when --config is not
// given.
const DefaultPath = "catalogue.yaml"

// Config holds every file setting. Zero values are filled from Default.
type Config struct {
	// DataFile is the catalogue data module that records are appended to.
	DataFile string `yaml:"data_file" validate:"required"`
	// OutputDir is where preview pages are written, one directory per slug.
	OutputDir string `yaml:"output_dir" validate:"required"`
	// IndexPath is the derived SQLite index. Empty disables the index.
	IndexPath string `yaml:"index_path"`
	// LogFile receives endless-mode log lines. Empty disables it.
	LogFile string `yaml:"log_file"`
	// Vocabulary is an optional YAML file overriding the built-in tables.
	Vocabulary string `yaml:"vocabulary"`

	Count       int           `yaml:"count" validate:"gte=1,lte=100000"`
	Delay       time.Duration `yaml:"delay" validate:"gte=0"`
	MaxAttempts int           `yaml:"max_attempts" validate:"gte=1"`

	// ReservedSlugs may never be used as a preview directory name.
	ReservedSlugs []string `yaml:"reserved_slugs" validate:"dive,required"`
}

// Default returns the built-in settings: the data file and previews live
// under catalogue/, five seconds between endless-mode cycles.
func Default() Config {
	return Config{
		DataFile:      "catalogue/catalogue-data.js",
		OutputDir:     "catalogue",
		IndexPath:     "catalogue/catalogue-index.db",
		LogFile:       "generation-log.txt",
		Count:         10,
		Delay:         5 * time.Second,
		MaxAttempts:   1000,
		ReservedSlugs: slices.Clone(slug.DefaultReserved),
	}
}

// Load reads and validates a config file. Keys absent from the file keep
// their defaults and unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadOptional is Load, except a missing file yields the defaults.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes config YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidationError lists every invalid field, keyed by YAML name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + e.Fields[name]
	}
	return "invalid config: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use YAML tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return &ValidationError{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
