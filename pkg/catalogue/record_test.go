package catalogue

import (
	"testing"
)

func TestRecord_First(t *testing.T) {
	rec := NewRecord([]byte(`{"title":"Dominus Deluxe","items":{"body":{"name":"Dominus"}}}`))

	// First match wins across alternate spellings.
	if got := rec.First("name", "title", "displayName").String(); got != "Dominus Deluxe" {
		t.Errorf("expected title fallback, got %q", got)
	}

	// Nested gjson paths work.
	if got := rec.First("items.body.name", "loadoutItems.body.name").String(); got != "Dominus" {
		t.Errorf("expected nested lookup, got %q", got)
	}

	// No match yields a non-existent result.
	if rec.First("missing", "also.missing").Exists() {
		t.Error("expected non-existent result for missing paths")
	}
}

func TestRecord_Str(t *testing.T) {
	rec := NewRecord([]byte(`{"name":"   ","title":"  Fennec Flame  ","code":123}`))

	// Blank strings are skipped, the winner is trimmed.
	if got := rec.Str("name", "title"); got != "Fennec Flame" {
		t.Errorf("expected trimmed title, got %q", got)
	}

	// Non-string values are skipped.
	if got := rec.Str("code"); got != "" {
		t.Errorf("expected empty for numeric field, got %q", got)
	}
}

func TestRecord_Slug(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"slug preferred", `{"slug":"octane-classic","uuid":"abc-123"}`, "octane-classic"},
		{"uuid fallback", `{"uuid":"abc-123"}`, "abc-123"},
		{"neither", `{"name":"x"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRecord([]byte(tt.raw)).Slug(); got != tt.want {
				t.Errorf("Slug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_Merge(t *testing.T) {
	summary := NewRecord([]byte(`{"name":"Summary Name","slug":"x"}`))
	detail := NewRecord([]byte(`{"name":"Detail Name","loadout":"ABC123"}`))

	merged, err := summary.Merge(detail)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	// Detail fills gaps...
	if got := merged.Str("loadout"); got != "ABC123" {
		t.Errorf("expected loadout from detail, got %q", got)
	}
	// ...but summary keys win on conflict.
	if got := merged.Str("name"); got != "Summary Name" {
		t.Errorf("expected summary name to win, got %q", got)
	}
	if got := merged.Str("slug"); got != "x" {
		t.Errorf("expected slug preserved, got %q", got)
	}
}

func TestRecord_MergeInvalidDetail(t *testing.T) {
	summary := NewRecord([]byte(`{"name":"Keep Me"}`))
	detail := NewRecord([]byte(`not json`))

	merged, err := summary.Merge(detail)
	if err == nil {
		t.Error("expected error for invalid detail JSON")
	}
	// Original record comes back untouched.
	if got := merged.Str("name"); got != "Keep Me" {
		t.Errorf("expected original record on merge failure, got %q", got)
	}
}
