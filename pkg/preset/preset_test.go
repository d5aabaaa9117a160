package preset

import (
	"testing"

	"github.com/cjl525/presetpull/pkg/catalogue"
)

func rec(t *testing.T, raw string) catalogue.Record {
	t.Helper()
	return catalogue.NewRecord([]byte(raw))
}

func TestFromRecord(t *testing.T) {
	p, ok := FromRecord(rec(t, `{
		"name": "  Blue Beast  ",
		"loadout": "LOAD42",
		"colors": {"primary": [0, 0, 255], "accent": {"r": 0.5, "g": 0.5, "b": 0.5}},
		"items": {"body": {"name": "Fennec"}, "decal": "Flames", "wheels": {"label": "Cristianos"}},
		"finishes": {"matte": true}
	}`))
	if !ok {
		t.Fatal("expected record to normalize")
	}

	if p.Name != "Blue Beast" {
		t.Errorf("name not trimmed: %q", p.Name)
	}
	if p.Loadout != "LOAD42" {
		t.Errorf("loadout: %q", p.Loadout)
	}
	if p.Primary != (Color{0, 0, 1}) {
		t.Errorf("255-scale primary not converted: %v", p.Primary)
	}
	if p.Accent != (Color{0.5, 0.5, 0.5}) {
		t.Errorf("accent: %v", p.Accent)
	}
	if p.Car != "Fennec" || p.Decal != "Flames" || p.Wheels != "Cristianos" {
		t.Errorf("items: %q %q %q", p.Car, p.Decal, p.Wheels)
	}
	if !p.Matte || p.Pearlescent {
		t.Errorf("flags: matte=%v pearlescent=%v", p.Matte, p.Pearlescent)
	}
}

func TestFromRecordAlternateKeys(t *testing.T) {
	p, ok := FromRecord(rec(t, `{
		"title": "Titled",
		"code": "C1",
		"paint": {"primary": {"red": 255, "green": 0, "blue": 0}},
		"loadoutItems": {"body": "Dominus"},
		"matte": true
	}`))
	if !ok {
		t.Fatal("expected record to normalize")
	}

	if p.Name != "Titled" || p.Loadout != "C1" {
		t.Errorf("alternate identity keys: %q %q", p.Name, p.Loadout)
	}
	if p.Primary != (Color{1, 0, 0}) {
		t.Errorf("long-form color keys: %v", p.Primary)
	}
	if p.Car != "Dominus" {
		t.Errorf("bare-string item: %q", p.Car)
	}
	if !p.Matte {
		t.Error("top-level matte flag ignored")
	}
}

func TestFromRecordDropped(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty record", `{}`},
		{"missing loadout", `{"name": "Car"}`},
		{"missing name", `{"loadout": "L1"}`},
		{"blank name", `{"name": "   ", "loadout": "L1"}`},
		{"blank loadout", `{"name": "Car", "loadout": "  "}`},
		{"non-string name", `{"name": 42, "loadout": "L1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := FromRecord(rec(t, tc.raw)); ok {
				t.Error("expected record to be dropped")
			}
		})
	}
}

func TestFromRecordFallbacks(t *testing.T) {
	p, ok := FromRecord(rec(t, `{"name": "Bare", "loadout": "L1"}`))
	if !ok {
		t.Fatal("expected record to normalize")
	}

	if p.Car != DefaultCar || p.Decal != DefaultDecal || p.Wheels != DefaultWheels {
		t.Errorf("item fallbacks: %q %q %q", p.Car, p.Decal, p.Wheels)
	}
	if p.Primary != DefaultPrimary || p.Accent != DefaultAccent {
		t.Errorf("color fallbacks: %v %v", p.Primary, p.Accent)
	}
	if p.Matte || p.Pearlescent {
		t.Error("flags should default to false")
	}
}

func TestComponent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Color
	}{
		{"unit range unchanged", `{"primary": [0.25, 0.5, 1]}`, Color{0.25, 0.5, 1}},
		{"255 range scaled", `{"primary": [255, 51, 0]}`, Color{1, 0.2, 0}},
		{"null component is zero", `{"primary": [null, 0.5, 0.5]}`, Color{0, 0.5, 0.5}},
		{"negative clamped", `{"primary": [-3, 0, 0]}`, Color{0, 0, 0}},
		{"short array falls back", `{"primary": [1, 0]}`, DefaultPrimary},
		{"non-color value falls back", `{"primary": "red"}`, DefaultPrimary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := FromRecord(rec(t, `{"name": "C", "loadout": "L", "colors": `+tc.raw+`}`))
			if !ok {
				t.Fatal("expected record to normalize")
			}
			if p.Primary != tc.want {
				t.Errorf("got %v, want %v", p.Primary, tc.want)
			}
		})
	}
}
