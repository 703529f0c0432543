// Package config holds the YAML run configuration.
package config

import (
	"bytes"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kpuputti/spamham/classifier"
	"github.com/kpuputti/spamham/pkg/errors"
	"github.com/kpuputti/spamham/pkg/log"
	"github.com/kpuputti/spamham/svm"
)

// HeuristicParams tunes the majority field heuristic.
type HeuristicParams struct {
	FieldFreq  float64 `yaml:"field_freq"`
	FieldsFreq float64 `yaml:"fields_freq"`
}

// SVMParams tunes the linear SVM fitter.
type SVMParams struct {
	C       float64 `yaml:"c"`
	MaxIter int     `yaml:"max_iter"`
}

// Config is a spamham run configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// Seed of the random source; 0 means time-seeded.
	Seed      int64           `yaml:"seed"`
	Heuristic HeuristicParams `yaml:"heuristic"`
	SVM       SVMParams       `yaml:"svm"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Heuristic: HeuristicParams{
			FieldFreq:  classifier.DefaultFieldFreq,
			FieldsFreq: classifier.DefaultFieldsFreq,
		},
		SVM: SVMParams{
			C:       svm.DefaultC,
			MaxIter: svm.DefaultMaxIter,
		},
	}
}

// Parse reads a YAML document over the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// Validate checks every value and returns the first ValidationError.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Seed < 0 {
		return errors.NewValidationError("seed", "must not be negative", c.Seed)
	}
	if !inUnitRange(c.Heuristic.FieldFreq) {
		return errors.NewValidationError("heuristic.field_freq", "must be in [0, 1]", c.Heuristic.FieldFreq)
	}
	if !inUnitRange(c.Heuristic.FieldsFreq) {
		return errors.NewValidationError("heuristic.fields_freq", "must be in [0, 1]", c.Heuristic.FieldsFreq)
	}
	if !(c.SVM.C > 0) || math.IsInf(c.SVM.C, 0) {
		return errors.NewValidationError("svm.c", "must be positive and finite", c.SVM.C)
	}
	if c.SVM.MaxIter <= 0 {
		return errors.NewValidationError("svm.max_iter", "must be positive", c.SVM.MaxIter)
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// ClassifierOptions translates the configuration into classifier options.
// The random source is left to the caller.
func (c *Config) ClassifierOptions() []classifier.Option {
	return []classifier.Option{
		classifier.WithThresholds(c.Heuristic.FieldFreq, c.Heuristic.FieldsFreq),
		classifier.WithC(c.SVM.C),
		classifier.WithMaxIter(c.SVM.MaxIter),
	}
}
