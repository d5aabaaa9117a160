// Package catalogue provides access to the bakkesplugins.com car-preset
// catalogue API.
//
// The package handles pagination of the preset listing, optional per-item
// detail enrichment with response caching, and loose-JSON access to the raw
// records (whose shapes drift between API versions). Requests are sequential
// and never retried: the catalogue is fetched best-effort in one pass.
package catalogue
