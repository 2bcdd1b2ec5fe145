// Package config loads the generator settings from defaults, an optional
// config file, EVODUNGEON_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. EVODUNGEON_ROOMS
const EnvPrefix = "EVODUNGEON"

// Config holds everything the driver needs for one run
type Config struct {
	Dimension         int    `mapstructure:"dimension"`
	Rooms             int    `mapstructure:"rooms"`
	Population        int    `mapstructure:"population"`
	Seed              int64  `mapstructure:"seed"`                // 0 picks a time-based seed
	MaxRepairAttempts int    `mapstructure:"max-repair-attempts"` // 0 retries forever
	MaxGenerations    int    `mapstructure:"max-generations"`     // 0 evolves forever
	MaxDoorAttempts   int    `mapstructure:"max-door-attempts"`   // 0 retries forever
	Doors             bool   `mapstructure:"doors"`
	Color             bool   `mapstructure:"color"`
	Debug             bool   `mapstructure:"debug"` // Color cells by immunity
	GUI               bool   `mapstructure:"gui"`
	Dump              string `mapstructure:"dump"`
	Lang              string `mapstructure:"lang"`
	LogLevel          string `mapstructure:"log-level"`
}

// Default returns the settings used when nothing else is given:
// a 20x20 dungeon with 10 rooms.
func Default() Config {
	return Config{
		Dimension:  20,
		Rooms:      10,
		Population: 10,
		Color:      true,
		Lang:       "en",
		LogLevel:   "warn",
	}
}

// NewFlagSet defines one flag per setting, defaulting to Default()
func NewFlagSet(name string) *pflag.FlagSet {
	d := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML, TOML or JSON config file")
	fs.Int("dimension", d.Dimension, "width and height of the dungeon")
	fs.Int("rooms", d.Rooms, "number of rooms to place")
	fs.Int("population", d.Population, "number of dungeons evolved per generation")
	fs.Int64("seed", d.Seed, "random seed (0 for time-based)")
	fs.Int("max-repair-attempts", d.MaxRepairAttempts, "placement retries per failed room (0 for unbounded)")
	fs.Int("max-generations", d.MaxGenerations, "generations before giving up (0 for unbounded)")
	fs.Int("max-door-attempts", d.MaxDoorAttempts, "door placement retries (0 for unbounded)")
	fs.Bool("doors", d.Doors, "place an entrance and an exit on the outer walls")
	fs.Bool("color", d.Color, "colored terminal output")
	fs.Bool("debug", d.Debug, "highlight immune cells")
	fs.Bool("gui", d.GUI, "show the dungeon in a window")
	fs.String("dump", d.Dump, "write the dungeon to this file")
	fs.String("lang", d.Lang, "message language")
	fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	return fs
}

// Load resolves the configuration. An empty path skips the config file;
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("dimension", d.Dimension)
	v.SetDefault("rooms", d.Rooms)
	v.SetDefault("population", d.Population)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max-repair-attempts", d.MaxRepairAttempts)
	v.SetDefault("max-generations", d.MaxGenerations)
	v.SetDefault("max-door-attempts", d.MaxDoorAttempts)
	v.SetDefault("doors", d.Doors)
	v.SetDefault("color", d.Color)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("gui", d.GUI)
	v.SetDefault("dump", d.Dump)
	v.SetDefault("lang", d.Lang)
	v.SetDefault("log-level", d.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the generator cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Dimension <= 0 {
		errs = append(errs, fmt.Errorf("dimension must be positive, got %d", c.Dimension))
	}
	if c.Rooms <= 0 {
		errs = append(errs, fmt.Errorf("rooms must be positive, got %d", c.Rooms))
	}
	if c.Population < 2 {
		errs = append(errs, fmt.Errorf("population must be at least 2, got %d", c.Population))
	}
	if c.MaxRepairAttempts < 0 || c.MaxGenerations < 0 || c.MaxDoorAttempts < 0 {
		errs = append(errs, errors.New("attempt and generation bounds must not be negative"))
	}
	return errors.Join(errs...)
}
