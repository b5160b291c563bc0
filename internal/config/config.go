package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HOOKRUN_LOGGING_LEVEL
const EnvPrefix = "HOOKRUN"

// Config represents the application configuration
type Config struct {
	Interpreter InterpreterConfig `mapstructure:"interpreter"`
	Paths       PathsConfig       `mapstructure:"paths"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// InterpreterConfig controls interpreter discovery
type InterpreterConfig struct {
	Candidates   []string      `mapstructure:"candidates"`
	Canonical    string        `mapstructure:"canonical"`
	Fallback     string        `mapstructure:"fallback"`
	Banner       string        `mapstructure:"banner"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	MinVersion   string        `mapstructure:"min_version"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from the user config directory and the environment
func Load() (*Config, error) {
	return LoadFrom(searchPaths()...)
}

// searchPaths lists the directories searched for config.toml. The working
// directory is the hook's project and is never searched.
func searchPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return nil
	}
	return []string{filepath.Join(homeDir, ".config", "hookrun")}
}

// LoadFrom loads config.toml from the first of paths that has one, applying
// defaults and HOOKRUN_* environment overrides
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// Environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	v.SetDefault("interpreter.candidates", []string{"python", "py", "python3"})
	v.SetDefault("interpreter.canonical", "python3")
	v.SetDefault("interpreter.fallback", "python")
	v.SetDefault("interpreter.banner", "Python 3")
	v.SetDefault("interpreter.probe_timeout", 5*time.Second)
	v.SetDefault("interpreter.min_version", "")

	v.SetDefault("paths.log_file", filepath.Join(homeDir, ".local", "share", "hookrun", "hookrun.log"))

	// warn keeps the inherited stderr clean on normal launches
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	return path
}
