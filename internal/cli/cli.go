// Package cli implements the presetpull command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cjl525/presetpull/internal/config"
	"github.com/cjl525/presetpull/pkg/buildinfo"
	"github.com/cjl525/presetpull/pkg/cache"
	pkgerrors "github.com/cjl525/presetpull/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "presetpull"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a CLI instance with a default logger and the loaded (or
// default) configuration.
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := config.Load("")
	c := &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
	if err != nil {
		c.Logger.Warn("ignoring unreadable config file", "error", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Download bakkesplugins.com car presets for the Expanded Presets plugin",
		Long:         `Presetpull fetches the public car-preset catalogue from bakkesplugins.com and writes it to the pipe-delimited file the Expanded Presets BakkesMod plugin imports.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.downloadCommand())
	root.AddCommand(c.installCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ExitCode maps an error from command execution to the process exit code:
// 0 for nil, 2 for an invalid scan root, 130 for interrupt, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case pkgerrors.Is(err, pkgerrors.ErrCodeInvalidRoot):
		return 2
	default:
		return 1
	}
}

// newStore builds the detail-payload cache from the config's cache section.
// Backend failures degrade to no caching rather than failing the run.
func (c *CLI) newStore(ctx context.Context) cache.Cache {
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache()
	case config.BackendRedis:
		store, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache()
		}
		return store
	default:
		dir := c.Config.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache()
			}
		}
		store, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache()
		}
		return store
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/presetpull/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
