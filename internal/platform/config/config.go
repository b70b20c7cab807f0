package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AppName   = "vibe-clock"
	EnvPrefix = "VIBE_CLOCK"
)

type Config struct {
	DBPath      string
	LogLevel    string
	LockTimeout time.Duration
	Verbose     bool
}

// Options carries command-line overrides; empty values fall through to the
// environment, the config file, then defaults.
type Options struct {
	ConfigFile string
	DBPath     string
	LogLevel   string
	Verbose    bool
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func Load(opts Options) (Config, error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("db", defaultDBPath(lookup))
	v.SetDefault("log_level", "warn")
	v.SetDefault("lock_timeout", "5s")

	configFile := opts.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = defaultConfigFile(lookup)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if !missing || explicit {
				return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
			}
		}
	}

	for _, key := range []string{"db", "log_level", "lock_timeout"} {
		if value, ok := lookup(EnvPrefix + "_" + strings.ToUpper(key)); ok && value != "" {
			v.Set(key, value)
		}
	}
	if opts.DBPath != "" {
		v.Set("db", opts.DBPath)
	}
	if opts.LogLevel != "" {
		v.Set("log_level", opts.LogLevel)
	}

	timeout, err := time.ParseDuration(v.GetString("lock_timeout"))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("invalid lock_timeout %q", v.GetString("lock_timeout"))
	}
	cfg := Config{
		DBPath:      v.GetString("db"),
		LogLevel:    v.GetString("log_level"),
		LockTimeout: timeout,
		Verbose:     opts.Verbose,
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("database path is required")
	}
	return cfg, nil
}

func defaultDBPath(lookup func(string) (string, bool)) string {
	dataHome, ok := lookup("XDG_DATA_HOME")
	if !ok || dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName, AppName+".db")
}

func defaultConfigFile(lookup func(string) (string, bool)) string {
	configHome, ok := lookup("XDG_CONFIG_HOME")
	if !ok || configHome == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		configHome = dir
	}
	return filepath.Join(configHome, AppName, "config.yaml")
}
