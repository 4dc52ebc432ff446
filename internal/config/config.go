// Package config holds the user settings read from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gochemics/internal/bubble"
	"github.com/alexiusacademia/gochemics/internal/fluid"
	"github.com/alexiusacademia/gochemics/internal/proximate"
)

// EnvVar names the environment variable consulted when --config is not given
const EnvVar = "GOCHEMICS_CONFIG"

// Config is the decoded configuration file
type Config struct {
	Log       LogConfig       `toml:"log"`
	Proximate ProximateConfig `toml:"proximate"`
	Bubble    BubbleConfig    `toml:"bubble"`
}

// LogConfig is the [log] table
type LogConfig struct {
	Level string `toml:"level"`
}

// ProximateConfig is the [proximate] table
type ProximateConfig struct {
	Tolerance float64 `toml:"tolerance"`
}

// BubbleConfig is the [bubble] table; Fluid names a preset from internal/fluid
type BubbleConfig struct {
	Gravity float64 `toml:"gravity"`
	Fluid   string  `toml:"fluid"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "warn"},
		Proximate: ProximateConfig{Tolerance: proximate.DefaultTolerance},
		Bubble:    BubbleConfig{Gravity: bubble.StandardGravity, Fluid: "water"},
	}
}

// Load decodes the file at path over the defaults. An empty path falls back
// to $GOCHEMICS_CONFIG, and to the defaults alone when that is unset too.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return c, nil
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("config: unknown key %q in %s", keys[0].String(), path)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the settings for values the calculators would reject
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if !(c.Proximate.Tolerance > 0) {
		return fmt.Errorf("proximate.tolerance must be positive, got %g", c.Proximate.Tolerance)
	}
	if !(c.Bubble.Gravity > 0) {
		return fmt.Errorf("bubble.gravity must be positive, got %g", c.Bubble.Gravity)
	}
	if _, err := fluid.Lookup(c.Bubble.Fluid); err != nil {
		return fmt.Errorf("bubble.fluid: %w", err)
	}
	return nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
