package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	pkgerrors "github.com/cjl525/presetpull/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"cancelled", context.Canceled, 130},
		{"wrapped cancellation", fmt.Errorf("run: %w", context.Canceled), 130},
		{"invalid scan root", pkgerrors.New(pkgerrors.ErrCodeInvalidRoot, "bad root"), 2},
		{"empty catalogue", pkgerrors.New(pkgerrors.ErrCodeEmptyCatalogue, "nothing"), 1},
		{"install failure", pkgerrors.New(pkgerrors.ErrCodeInstall, "copy failed"), 1},
		{"plain error", fmt.Errorf("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"download", "install", "scan", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("unexpected cache dir: %s", dir)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{1, "preset", "1 preset"},
		{3, "preset", "3 presets"},
		{2, "entry", "2 entries"},
		{0, "conflict marker", "0 conflict markers"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, tt.noun); got != tt.want {
			t.Errorf("plural(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
		}
	}
}
