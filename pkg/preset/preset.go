// Package preset turns raw catalogue records into the normalized preset
// values written to the plugin's configuration file.
//
// Normalization is deliberately lossy: upstream data is partial and
// inconsistently keyed, so records missing the essential fields are dropped
// rather than failing the batch, and cosmetic fields fall back to fixed
// placeholders.
package preset

import (
	"github.com/tidwall/gjson"

	"github.com/cjl525/presetpull/pkg/catalogue"
)

// Fallback cosmetics used when a record omits the item.
const (
	DefaultCar    = "Octane"
	DefaultDecal  = "None"
	DefaultWheels = "OEM"
)

// Fallback paint colors used when a record omits a color block.
var (
	DefaultPrimary = Color{0.18, 0.18, 0.18}
	DefaultAccent  = Color{0.9, 0.35, 0.15}
)

// Color is an RGB triple with every component in [0,1].
type Color [3]float64

// Preset is a normalized car preset. It is constructed once by FromRecord
// and never mutated afterwards.
type Preset struct {
	Name        string
	Loadout     string
	Primary     Color
	Accent      Color
	Car         string
	Decal       string
	Wheels      string
	Matte       bool
	Pearlescent bool
}

// FromRecord normalizes a raw catalogue record into a Preset.
//
// Each field is resolved through an ordered list of alternate key
// spellings to absorb API naming drift. The second return is false when
// the record lacks a usable name or loadout code after trimming; such
// records are dropped, not errors.
func FromRecord(rec catalogue.Record) (Preset, bool) {
	name := rec.Str("name", "title", "displayName")
	if name == "" {
		return Preset{}, false
	}
	loadout := rec.Str("loadout", "code", "loadout_code")
	if loadout == "" {
		return Preset{}, false
	}

	colors := rec.First("colors", "colours", "paint")
	items := rec.First("items", "loadoutItems")

	return Preset{
		Name:        name,
		Loadout:     loadout,
		Primary:     parseColor(colors.Get("primary"), DefaultPrimary),
		Accent:      parseColor(colors.Get("accent"), DefaultAccent),
		Car:         itemName(items.Get("body"), DefaultCar),
		Decal:       itemName(items.Get("decal"), DefaultDecal),
		Wheels:      itemName(items.Get("wheels"), DefaultWheels),
		Matte:       flag(rec, "matte"),
		Pearlescent: flag(rec, "pearlescent"),
	}, true
}

// parseColor accepts a color as either an array of at least three
// components or an object with r/g/b keys (long and uppercase spellings
// included). Anything else yields the fallback.
func parseColor(v gjson.Result, fallback Color) Color {
	if v.IsArray() {
		arr := v.Array()
		if len(arr) >= 3 {
			return Color{component(arr[0]), component(arr[1]), component(arr[2])}
		}
		return fallback
	}
	if v.IsObject() {
		return Color{
			component(firstOf(v, "r", "red", "R")),
			component(firstOf(v, "g", "green", "G")),
			component(firstOf(v, "b", "blue", "B")),
		}
	}
	return fallback
}

// component clamps a single color component into [0,1]. Values above 1 are
// assumed to be on the 0-255 scale and divided down; null or missing
// components are 0.
func component(v gjson.Result) float64 {
	if !v.Exists() || v.Type == gjson.Null {
		return 0
	}
	f := v.Float()
	if f > 1 {
		f /= 255
	}
	return min(1, max(0, f))
}

// itemName resolves a loadout item that may be an object carrying a
// name or label field, or a bare string.
func itemName(v gjson.Result, fallback string) string {
	if v.IsObject() {
		name := firstOf(v, "name", "label")
		if name.Type == gjson.String && name.String() != "" {
			return name.String()
		}
		return fallback
	}
	if v.Type == gjson.String && v.String() != "" {
		return v.String()
	}
	return fallback
}

// flag reads a finish flag from the "finishes" block or the record's top
// level, whichever is truthy first.
func flag(rec catalogue.Record, key string) bool {
	return rec.First("finishes."+key).Bool() || rec.First(key).Bool()
}

func firstOf(v gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if r := v.Get(k); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
