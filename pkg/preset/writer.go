package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cjl525/presetpull/pkg/errors"
)

// Line serializes the preset as one configuration-file line: nine fields
// joined by "|" in fixed order, colors as comma-joined fixed-point triples
// and flags as "1"/"0". Literal pipes inside text fields are substituted
// with "/" so the delimiter stays unambiguous.
func (p Preset) Line() string {
	return strings.Join([]string{
		sanitize(p.Name),
		sanitize(p.Loadout),
		p.Primary.String(),
		p.Accent.String(),
		sanitize(p.Car),
		sanitize(p.Decal),
		sanitize(p.Wheels),
		flagField(p.Matte),
		flagField(p.Pearlescent),
	}, "|")
}

// String formats the color as three comma-joined components at three
// decimal places, e.g. "1.000,0.000,0.000".
func (c Color) String() string {
	return fmt.Sprintf("%.3f,%.3f,%.3f", c[0], c[1], c[2])
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}

func flagField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WriteFile writes the presets to path, one newline-terminated line each,
// creating parent directories as needed. The destination is truncated and
// rewritten whole on every call.
func WriteFile(path string, presets []Preset) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeWrite, err, "create output directory")
		}
	}

	var sb strings.Builder
	for _, p := range presets {
		sb.WriteString(p.Line())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write presets file")
	}
	return nil
}
