package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Seat choices for match.ai_seat
const (
	SeatRandom = "random"
	SeatBlack  = "black"
	SeatRed    = "red"
)

// Config holds all configuration for the application
type Config struct {
	Search   SearchConfig   `mapstructure:"search"`
	Match    MatchConfig    `mapstructure:"match"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Display  DisplayConfig  `mapstructure:"display"`
	SelfPlay SelfPlayConfig `mapstructure:"selfplay"`
}

// SearchConfig holds minimax settings
type SearchConfig struct {
	Depth   int  `mapstructure:"depth"`
	Pruning bool `mapstructure:"pruning"`
}

// MatchConfig holds game loop settings
type MatchConfig struct {
	AISeat         string `mapstructure:"ai_seat"`
	MaxTurns       int    `mapstructure:"max_turns"`
	RandomOpenings int    `mapstructure:"random_openings"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DisplayConfig holds console rendering settings
type DisplayConfig struct {
	Color     bool `mapstructure:"color"`
	ShowRules bool `mapstructure:"show_rules"`
}

// SelfPlayConfig holds settings for AI-vs-AI runs
type SelfPlayConfig struct {
	Games     int    `mapstructure:"games"`
	Seed      uint64 `mapstructure:"seed"`
	ShowBoard bool   `mapstructure:"show_board"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.depth", 3)
	v.SetDefault("search.pruning", true)

	// Match defaults
	v.SetDefault("match.ai_seat", SeatRandom)
	v.SetDefault("match.max_turns", 200)
	v.SetDefault("match.random_openings", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Display defaults
	v.SetDefault("display.color", false)
	v.SetDefault("display.show_rules", false)

	// Self-play defaults
	v.SetDefault("selfplay.games", 1)
	v.SetDefault("selfplay.seed", 0)
	v.SetDefault("selfplay.show_board", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()

	// Set defaults before loading any config
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		// Default config locations
		nv.SetConfigName("teeko")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/teeko")
	}

	nv.SetEnvPrefix("TEEKO")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing explicit file falls back to defaults like a missing default file
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	v, cfg = nv, c
	mu.Unlock()
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the current config. The returned value must not be modified;
// reloads swap in a new instance.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges teeko.<env>.yaml over the loaded config. A
// missing file is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("teeko.%s.yaml", env)

	vp := GetViper()
	// keep watching the base file afterwards
	if base := vp.ConfigFileUsed(); base != "" {
		defer vp.SetConfigFile(base)
	}
	vp.SetConfigFile(envFile)
	if err := vp.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	return reload(vp)
}

func reload(vp *viper.Viper) error {
	c, err := decode(vp)
	if err != nil {
		return err
	}
	mu.Lock()
	cfg = c
	mu.Unlock()
	return nil
}

// Set allows runtime config updates. The change is decoded on a scratch copy
// first; values that fail validation never reach the live viper.
func Set(key string, value interface{}) error {
	vp := GetViper()

	candidate := viper.New()
	if err := candidate.MergeConfigMap(vp.AllSettings()); err != nil {
		return fmt.Errorf("unable to copy config: %w", err)
	}
	candidate.Set(key, value)
	c, err := decode(candidate)
	if err != nil {
		return err
	}

	vp.Set(key, value)
	mu.Lock()
	cfg = c
	mu.Unlock()
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives
// the new config, or the error that kept the old one in place.
func WatchConfig(onChange func(*Config, error)) {
	vp := GetViper()
	vp.OnConfigChange(func(e fsnotify.Event) {
		err := reload(vp)
		if onChange != nil {
			onChange(Get(), err)
		}
	})
	vp.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Search.Depth < 1 {
		return fmt.Errorf("search.depth must be at least 1")
	}
	if c.Search.Depth > 8 {
		return fmt.Errorf("search.depth must be at most 8")
	}

	switch c.Match.AISeat {
	case SeatRandom, SeatBlack, SeatRed:
	default:
		return fmt.Errorf("match.ai_seat must be one of %q, %q or %q", SeatRandom, SeatBlack, SeatRed)
	}
	if c.Match.MaxTurns <= 0 {
		return fmt.Errorf("match.max_turns must be positive")
	}
	if c.Match.RandomOpenings < 0 {
		return fmt.Errorf("match.random_openings must be non-negative")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.SelfPlay.Games <= 0 {
		return fmt.Errorf("selfplay.games must be positive")
	}

	return nil
}
