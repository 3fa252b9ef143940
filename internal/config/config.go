// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jdfalk/fuzzymatch/pkg/distance"
	"github.com/jdfalk/fuzzymatch/pkg/fuzz"
	"github.com/jdfalk/fuzzymatch/pkg/process"
	"github.com/jdfalk/fuzzymatch/pkg/processor"
)

var (
	ErrUnknownScorer    = errors.New("unknown scorer")
	ErrUnknownProcessor = errors.New("unknown processor")
	ErrUnknownFormat    = errors.New("unknown output format")
)

// Formats accepted by the format setting.
var Formats = []string{"text", "yaml", "csv"}

// Config holds application configuration
type Config struct {
	Scorer      string
	Processor   string
	ScoreCutoff float64 // negative means no cutoff
	Limit       int
	Workers     int
	Weights     string // "insert,delete,substitute"
	Format      string
	LogLevel    string
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("scorer", "wratio")
	viper.SetDefault("processor", "none")
	viper.SetDefault("score_cutoff", -1.0)
	viper.SetDefault("limit", 5)
	viper.SetDefault("workers", 1)
	viper.SetDefault("weights", "1,1,1")
	viper.SetDefault("format", "text")
	viper.SetDefault("log_level", "warn")

	AppConfig = Config{
		Scorer:      strings.ToLower(viper.GetString("scorer")),
		Processor:   strings.ToLower(viper.GetString("processor")),
		ScoreCutoff: viper.GetFloat64("score_cutoff"),
		Limit:       viper.GetInt("limit"),
		Workers:     viper.GetInt("workers"),
		Weights:     viper.GetString("weights"),
		Format:      strings.ToLower(viper.GetString("format")),
		LogLevel:    viper.GetString("log_level"),
	}
}

// ScorerFunc resolves the configured scorer name.
func (c Config) ScorerFunc() (fuzz.Scorer, error) {
	s, ok := fuzz.Lookup(c.Scorer)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScorer, c.Scorer, strings.Join(fuzz.Names(), ", "))
	}
	return s, nil
}

// ProcessorFunc resolves the configured processor name.
func (c Config) ProcessorFunc() (processor.Func, error) {
	p, ok := processor.Lookup(c.Processor)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: none, default, fold)", ErrUnknownProcessor, c.Processor)
	}
	return p, nil
}

// ParsedWeights parses the weights setting, e.g. "1,1,2".
func (c Config) ParsedWeights() (distance.Weights, error) {
	return ParseWeights(c.Weights)
}

// CheckFormat rejects output formats the CLI cannot write.
func (c Config) CheckFormat() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
}

// SimilarityOptions maps the configuration onto options for a fuzz scorer.
func (c Config) SimilarityOptions() (process.Options[float64], error) {
	p, err := c.ProcessorFunc()
	if err != nil {
		return process.Options[float64]{}, err
	}
	opts := process.Options[float64]{
		Processor: p,
		Limit:     c.Limit,
		Workers:   c.Workers,
	}
	if c.ScoreCutoff >= 0 {
		opts.ScoreCutoff = process.Cutoff(c.ScoreCutoff)
	}
	return opts, nil
}

// DistanceOptions maps the configuration onto options for a distance
// scorer. The cutoff is rounded down to a whole distance.
func (c Config) DistanceOptions() (process.Options[int], error) {
	p, err := c.ProcessorFunc()
	if err != nil {
		return process.Options[int]{}, err
	}
	opts := process.Options[int]{
		Processor: p,
		Limit:     c.Limit,
		Workers:   c.Workers,
	}
	if c.ScoreCutoff >= 0 {
		opts.ScoreCutoff = process.Cutoff(int(math.Floor(c.ScoreCutoff)))
	}
	return opts, nil
}

// ParseWeights parses "insert,delete,substitute" into validated weights.
func ParseWeights(s string) (distance.Weights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return distance.Weights{}, fmt.Errorf("%w: want insert,delete,substitute, got %q", distance.ErrInvalidWeights, s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return distance.Weights{}, fmt.Errorf("%w: %q: %v", distance.ErrInvalidWeights, s, err)
		}
		vals[i] = v
	}
	w := distance.Weights{Insert: vals[0], Delete: vals[1], Substitute: vals[2]}
	if err := w.Validate(); err != nil {
		return distance.Weights{}, err
	}
	return w, nil
}
