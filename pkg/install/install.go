// Package install copies a written presets file into the BakkesMod data
// folder where the Expanded Presets plugin picks it up.
package install

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cjl525/presetpull/pkg/errors"
)

// Subfolder is the plugin's directory under the BakkesMod data folder.
const Subfolder = "ExpandedPresets"

// Candidates returns the conventional BakkesMod data-folder locations in
// probe order. Entries are returned whether or not they exist; Resolve
// filters for presence.
//
// Probed in order: $BAKKESMOD_DATA, $BAKKESMOD_PATH/data, the Windows
// app-data layout under $APPDATA, then home-relative fallbacks for
// portable installs.
func Candidates() []string {
	var dirs []string
	if v := os.Getenv("BAKKESMOD_DATA"); v != "" {
		dirs = append(dirs, v)
	}
	if v := os.Getenv("BAKKESMOD_PATH"); v != "" {
		dirs = append(dirs, filepath.Join(v, "data"))
	}
	if v := os.Getenv("APPDATA"); v != "" {
		dirs = append(dirs, filepath.Join(v, "bakkesmod", "bakkesmod", "data"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, "bakkesmod", "data"),
			filepath.Join(home, ".bakkesmod", "data"),
		)
	}
	return dirs
}

// Resolve determines the destination directory for the presets file.
//
// A non-empty override is used as-is (created if missing). Otherwise the
// first existing candidate data folder is chosen and the plugin subfolder
// appended. When nothing can be found the caller must supply an explicit
// path; that is reported as a configuration error, not a crash.
func Resolve(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	for _, dir := range Candidates() {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return filepath.Join(dir, Subfolder), nil
		}
	}
	return "", errors.New(errors.ErrCodeNoDestination,
		"no BakkesMod data folder found; pass an explicit install path")
}

// Install copies src into the resolved destination directory and returns
// the destination file path. The copy preserves the source's modification
// time. Copying a file onto itself is a no-op.
func Install(src, override string) (string, error) {
	dir, err := Resolve(override)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInstall, err, "create install directory")
	}

	dst := filepath.Join(dir, filepath.Base(src))
	same, err := samePath(src, dst)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInstall, err, "resolve install paths")
	}
	if same {
		return dst, nil
	}

	if err := copyFile(src, dst); err != nil {
		return "", errors.Wrap(errors.ErrCodeInstall, err, "copy presets file")
	}
	return dst, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}
	ia, err := os.Stat(absA)
	if err != nil {
		return false, err
	}
	ib, err := os.Stat(absB)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(ia, ib), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
