// Package config loads the optional presetpull configuration file.
//
// The file is TOML at $XDG_CONFIG_HOME/presetpull/config.toml (or
// ~/.config/presetpull/config.toml). A missing file is not an error; every
// field has a usable default and command-line flags override whatever the
// file provides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cjl525/presetpull/pkg/catalogue"
)

const appName = "presetpull"

// Cache backend names accepted in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Duration wraps time.Duration so TOML values can be written as "750ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config is the file-backed configuration.
type Config struct {
	Output   string   `toml:"output"`
	Limit    int      `toml:"limit"`
	PageSize int      `toml:"page_size"`
	Sleep    Duration `toml:"sleep"`
	Details  bool     `toml:"details"`

	Install Install `toml:"install"`
	Cache   Cache   `toml:"cache"`
}

// Install configures the optional install step.
type Install struct {
	Path string `toml:"path"` // explicit destination directory override
}

// Cache configures the detail-payload cache.
type Cache struct {
	Backend   string   `toml:"backend"`    // file, redis or none
	TTL       Duration `toml:"ttl"`
	Dir       string   `toml:"dir"`        // file backend; default XDG cache dir
	RedisAddr string   `toml:"redis_addr"` // redis backend, host:port
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Output:   "bakkesplugins_cars.cfg",
		PageSize: catalogue.DefaultPageSize,
		Sleep:    Duration{catalogue.DefaultDelay},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     Duration{catalogue.DefaultDetailTTL},
		},
	}
}

// Path returns the config file location using the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields Default() without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
