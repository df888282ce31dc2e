// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"runtime"

	"github.com/spf13/viper"
)

// ClassifyConfig are the settings driving per-read classification.
type ClassifyConfig struct {
	// the minimum length for a partial hit to qualify for scoring
	MinHitLen int `mapstructure:"min-hit-len"`

	// the step the scan cursor retreats by when the last partial hit
	// was long enough to be interesting but too short to qualify
	SeedStep int `mapstructure:"seed-step"`

	// the per-read budget of resolved genome coordinates
	MaxHits int `mapstructure:"max-hits"`

	// the strand progress gap beyond which the lagging strand is
	// abandoned; 0 picks max(readLen/2, 2*min-hit-len) per read
	MaxStrandLag int `mapstructure:"max-strand-lag"`

	// the result emission strategy, "all" or "best"
	Emit string `mapstructure:"emit"`
}

// IndexConfig are the settings used when building an index.
type IndexConfig struct {
	// a suffix-array value is kept for every sample-rate'th text position
	SampleRate int `mapstructure:"sample-rate"`

	// an occurrence-count checkpoint is kept every checkpoint-rate rows
	CheckpointRate int `mapstructure:"checkpoint-rate"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those available from the command line.
type Config struct {
	// Classify settings for the classification core
	Classify ClassifyConfig

	// Index settings for index building
	Index IndexConfig

	// Threads is the worker count used by the classify command
	Threads int `mapstructure:"threads"`
}

// SetDefaults registers every setting's default value with viper.
// Bound command line flags and config file values take precedence.
func SetDefaults() {
	viper.SetDefault("classify.min-hit-len", 22)
	viper.SetDefault("classify.seed-step", 10)
	viper.SetDefault("classify.max-hits", 5)
	viper.SetDefault("classify.max-strand-lag", 0)
	viper.SetDefault("classify.emit", "all")
	viper.SetDefault("index.sample-rate", 32)
	viper.SetDefault("index.checkpoint-rate", 128)
	viper.SetDefault("threads", runtime.NumCPU())
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings file) and/or command line arguments.
func New() *Config {
	SetDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	if c.Threads < 1 {
		c.Threads = runtime.NumCPU()
	}

	return &c
}
