// Package config loads the run configuration of the macrocycle command
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	HPFilter    HPFilterConfig    `yaml:"hp_filter"`
	Series      []SeriesConfig    `yaml:"series" validate:"dive"`
	Correlation CorrelationConfig `yaml:"correlation"`
	Growth      *GrowthConfig     `yaml:"growth"`
	Output      OutputConfig      `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

type HPFilterConfig struct {
	Lambdas []float64 `yaml:"lambdas" default:"[10,100,1600]" validate:"min=1,dive,gte=0"`
	Solver  string    `yaml:"solver" default:"banded" validate:"oneof=banded dense"`

	// RawLevels filters the series as is instead of its natural log
	RawLevels bool `yaml:"raw_levels"`
}

// SeriesConfig points at a CSV file holding a date column and a value column
type SeriesConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Path        string `yaml:"path" validate:"required"`
	DateColumn  string `yaml:"date_column" default:"DATE"`
	ValueColumn string `yaml:"value_column" validate:"required"`
	DateFormat  string `yaml:"date_format" default:"2006-01-02"`
}

type CorrelationConfig struct {
	Lambda float64 `yaml:"lambda" default:"1600" validate:"gte=0"`
}

// GrowthConfig points at a CSV panel with Penn World Table column names. An empty country list
// accounts for the OECD members.
type GrowthConfig struct {
	Path      string   `yaml:"path" validate:"required"`
	Countries []string `yaml:"countries"`
	StartYear int      `yaml:"start_year" validate:"gte=0"`
	EndYear   int      `yaml:"end_year" validate:"omitempty,gtefield=StartYear"`
}

type OutputConfig struct {
	JSONPath string `yaml:"json_path"`
	PlotDir  string `yaml:"plot_dir"`
}

// Load reads a YAML configuration file, fills in defaults and validates the result
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes, fills in defaults and validates the result
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set config defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// Validate checks the struct tags and that there is something to run
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%s, %w", strings.Join(fields, "; "), ErrInvalidConfig)
		}
		return err
	}
	if len(c.Series) == 0 && c.Growth == nil {
		return fmt.Errorf("no series or growth panel configured, %w", ErrInvalidConfig)
	}

	names := make(map[string]struct{}, len(c.Series))
	for _, s := range c.Series {
		if _, exists := names[s.Name]; exists {
			return fmt.Errorf("duplicate series name %q, %w", s.Name, ErrInvalidConfig)
		}
		names[s.Name] = struct{}{}
	}
	return nil
}
