// Package config holds the settings of a stub generation run.
package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputPath  = "target/doc/opendal_ruby.json"
	DefaultOutputPath = "lib/opendal_ruby/rust_bindings.rb"
	DefaultModule     = "RustBindings"
	DefaultLogLevel   = "warn"

	// StdoutPath as output writes the generated file to standard output.
	StdoutPath = "-"
)

// Config holds configuration for stub generation.
type Config struct {
	InputPath  string `yaml:"input" validate:"required"`
	OutputPath string `yaml:"output" validate:"required"`
	Module     string `yaml:"module" validate:"required,rubyconst"`
	Header     string `yaml:"header" validate:"omitempty,startswith=#"`
	LocalOnly  bool   `yaml:"local_only"`
	PublicOnly bool   `yaml:"public_only"`
	Atomic     bool   `yaml:"atomic"`
	LogLevel   string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogJSON    bool   `yaml:"log_json"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Module:     DefaultModule,
		LogLevel:   DefaultLogLevel,
	}
}

type fileConfig struct {
	Stubgen struct {
		Input      *string `yaml:"input"`
		Output     *string `yaml:"output"`
		Module     *string `yaml:"module"`
		Header     *string `yaml:"header"`
		LocalOnly  *bool   `yaml:"local_only"`
		PublicOnly *bool   `yaml:"public_only"`
		Atomic     *bool   `yaml:"atomic"`
		LogLevel   *string `yaml:"log_level"`
		LogJSON    *bool   `yaml:"log_json"`
	} `yaml:"stubgen"`
}

// LoadFile applies the values of the YAML config file at path on fsys to cfg.
// Fields named in keep are left alone, so explicitly set flags win over the file.
func LoadFile(fsys afero.Fs, cfg *Config, path string, keep map[string]bool) error {
	data, err := afero.ReadFile(fsys, filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	s := fc.Stubgen
	setString(&cfg.InputPath, s.Input, keep["input"])
	setString(&cfg.OutputPath, s.Output, keep["output"])
	setString(&cfg.Module, s.Module, keep["module"])
	setString(&cfg.Header, s.Header, keep["header"])
	setString(&cfg.LogLevel, s.LogLevel, keep["log-level"])
	setBool(&cfg.LocalOnly, s.LocalOnly, keep["local-only"])
	setBool(&cfg.PublicOnly, s.PublicOnly, keep["public-only"])
	setBool(&cfg.Atomic, s.Atomic, keep["atomic"])
	setBool(&cfg.LogJSON, s.LogJSON, keep["log-json"])
	return nil
}

func setString(dst *string, v *string, keep bool) {
	if v != nil && !keep {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool, keep bool) {
	if v != nil && !keep {
		*dst = *v
	}
}

var rubyConstPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*(::[A-Z][A-Za-z0-9_]*)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// A Ruby constant path such as RustBindings or OpenDAL::Bindings.
	_ = v.RegisterValidation("rubyconst", func(fl validator.FieldLevel) bool {
		return rubyConstPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks cfg for missing or malformed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ToStdout reports whether the output goes to standard output.
func (c Config) ToStdout() bool {
	return c.OutputPath == StdoutPath
}
