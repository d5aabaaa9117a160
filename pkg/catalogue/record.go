package catalogue

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Record is a raw catalogue entry as returned by the remote API.
//
// The API's record shape is not contractually fixed: field names drift
// between endpoint versions (name vs title vs displayName, colors vs
// colours vs paint, ...), so Record keeps the original JSON and exposes
// path-probing accessors instead of a rigid struct. Alternate spellings of
// a field are expressed as an ordered candidate list, first match wins.
type Record struct {
	raw []byte
}

// NewRecord wraps a raw JSON object. The bytes are not copied; callers
// must not mutate them afterwards.
func NewRecord(raw []byte) Record {
	return Record{raw: raw}
}

// Raw returns the underlying JSON.
func (r Record) Raw() []byte {
	return r.raw
}

// First returns the value at the first of paths that exists in the record.
// Paths use gjson syntax, so nested lookups like "items.body.name" work.
func (r Record) First(paths ...string) gjson.Result {
	for _, p := range paths {
		if v := gjson.GetBytes(r.raw, p); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// Str returns the first non-blank string among paths, trimmed.
// Non-string values and whitespace-only strings are skipped.
func (r Record) Str(paths ...string) string {
	for _, p := range paths {
		v := gjson.GetBytes(r.raw, p)
		if v.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}

// Slug returns the record's detail-endpoint identifier: the slug when
// present, else the uuid, else "".
func (r Record) Slug() string {
	return r.Str("slug", "uuid")
}

// Merge overlays this record on top of detail: detail supplies any keys the
// summary record lacks, while top-level keys present in the summary win on
// conflict. Summary fields are treated as more authoritative for display
// purposes than a possibly stale detail payload.
func (r Record) Merge(detail Record) (Record, error) {
	var base, over map[string]json.RawMessage
	if err := json.Unmarshal(detail.raw, &base); err != nil {
		return r, err
	}
	if err := json.Unmarshal(r.raw, &over); err != nil {
		return r, err
	}
	for k, v := range over {
		base[k] = v
	}
	merged, err := json.Marshal(base)
	if err != nil {
		return r, err
	}
	return Record{raw: merged}, nil
}
