// Package config loads and validates the run configuration of wirepat.
// Values come from Default, then an optional YAML file, then command-line
// flags; Validate runs after the last layer is applied.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wirepat/fileio"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the run configuration.
type Config struct {
	Epsilon       int      `yaml:"epsilon" validate:"min=1"`
	NetsDir       string   `yaml:"nets_dir"`
	Nets          []string `yaml:"nets" validate:"dive,required,glob"`
	TimingGraph   string   `yaml:"timing_graph"`
	PatternsCSV   string   `yaml:"patterns_csv"`
	SequencesJSON string   `yaml:"sequences_json"`
	AnnotatedJSON string   `yaml:"annotated_json"`
	MetricsFile   string   `yaml:"metrics_file"`
	LogVerbosity  int      `yaml:"log_verbosity" validate:"min=0,max=5"`
	SourcePolicy  string   `yaml:"source_policy" validate:"oneof=first_leaf driver_pin"`
}

// validate is shared; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	return v
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Epsilon:      1,
		NetsDir:      ".",
		Nets:         append([]string(nil), fileio.DefaultNetGlobs...),
		SourcePolicy: "first_leaf",
	}
}

// Load reads the YAML file at path over Default and validates the result.
// Unknown keys are rejected. An empty file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}

	return formatValidationError(validate.Struct(c))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalid, field)
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalid, field, e.Param())
	case "max":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalid, field, e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %q", ErrInvalid, field, e.Param(), e.Value())
	case "glob":
		return fmt.Errorf("%w: %s: bad glob pattern %q", ErrInvalid, field, e.Value())
	default:
		return fmt.Errorf("%w: %s: failed %s validation", ErrInvalid, field, e.Tag())
	}
}
