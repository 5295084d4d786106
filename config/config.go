package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/limbo/audio"
)

// Sentinel errors
var (
	ErrInvalidVolume     = errors.New("volume must be within 0-100")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidLogLevel   = errors.New("unknown log level")
)

// Config holds runtime settings; none of them alter game rules
type Config struct {
	// Seed fixes the random source; 0 picks a time-based seed
	Seed int64 `env:"LIMBO_SEED" envDefault:"0"`

	Mute       bool   `env:"LIMBO_MUTE"`
	Volume     int    `env:"LIMBO_VOLUME" envDefault:"60"`
	SampleRate int    `env:"LIMBO_SAMPLE_RATE" envDefault:"44100"`
	Debug      bool   `env:"LIMBO_DEBUG"`
	LogLevel   string `env:"LIMBO_LOG_LEVEL" envDefault:"info"`
	LogDir     string `env:"LIMBO_LOG_DIR" envDefault:"logs"`
}

// Load resolves configuration: the optional env file, then the process environment,
// then command-line flags, each overriding the previous
func Load(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("limbo", flag.ContinueOnError)
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to the log directory")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidVolume, c.Volume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// ResolveSeed returns the configured seed, or one derived from now when unset
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return uint64(c.Seed)
	}
	return uint64(now.UnixNano())
}

// Audio converts the sound settings for the audio package
func (c *Config) Audio() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      !c.Mute,
		MasterVolume: float64(c.Volume) / 100.0,
		SampleRate:   c.SampleRate,
	}
}
