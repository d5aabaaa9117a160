package catalogue

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"

	"github.com/cjl525/presetpull/pkg/cache"
	"github.com/cjl525/presetpull/pkg/observability"
)

// Defaults for the client configuration.
const (
	DefaultBaseURL  = "https://bakkesplugins.com"
	DefaultPageSize = 100

	// DefaultDelay is the pause between page requests. The site rate-limits
	// eager clients, and a catalogue run is not latency-sensitive.
	DefaultDelay = 750 * time.Millisecond

	// DefaultDetailTTL is how long enrichment detail payloads are cached.
	DefaultDetailTTL = 24 * time.Hour
)

// presetsPath is the shared path of the catalogue and detail endpoints.
const presetsPath = "/api/presets"

// Config holds the tunable parts of a Client. The zero value is usable;
// empty or non-positive fields fall back to the package defaults.
type Config struct {
	BaseURL   string        // API origin, e.g. "https://bakkesplugins.com"
	PageSize  int           // entries requested per page
	Delay     time.Duration // pause between page requests
	DetailTTL time.Duration // cache lifetime for detail payloads
}

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	switch {
	case c.Delay == 0:
		c.Delay = DefaultDelay
	case c.Delay < 0:
		c.Delay = 0
	}
	if c.DetailTTL <= 0 {
		c.DetailTTL = DefaultDetailTTL
	}
}

// Client fetches the car-preset catalogue from bakkesplugins.com.
//
// All requests are sequential with a single attempt each: any transport
// failure or unexpected status aborts the run, except during enrichment
// where failures degrade to the un-enriched record.
type Client struct {
	cfg    Config
	getter Getter
	store  cache.Cache
	log    *log.Logger
}

// NewClient creates a catalogue client.
//
// Pass cache.NewNullCache() as store to disable detail caching and nil as
// logger to use the package default.
func NewClient(cfg Config, getter Getter, store cache.Cache, logger *log.Logger) *Client {
	cfg.setDefaults()
	if getter == nil {
		getter = NewHTTPGetter()
	}
	if store == nil {
		store = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{cfg: cfg, getter: getter, store: store, log: logger}
}

// Page is one page of the paginated catalogue listing.
type Page struct {
	Records  []Record
	LastPage int // 0 when the response carried no usable pagination metadata
}

// FetchPage requests a single catalogue page (pages start at 1).
//
// A 403 response maps to ErrBlocked with a remediation hint; any other
// non-2xx status is a fatal ErrNetwork. The entry list is accepted under
// "data" or "results", the last-page metadata under "meta.last_page" or
// "meta.lastPage".
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	params := url.Values{
		"type":    {"cars"},
		"perPage": {strconv.Itoa(c.cfg.PageSize)},
		"page":    {strconv.Itoa(page)},
	}

	c.log.Debug("fetching catalogue page", "page", page)
	resp, err := c.getter.Get(ctx, c.cfg.BaseURL+presetsPath, params)
	if err != nil {
		return Page{}, fmt.Errorf("fetch page %d: %w", page, err)
	}

	switch {
	case resp.StatusCode == 403:
		return Page{}, ErrBlocked
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return Page{}, fmt.Errorf("fetch page %d: %w: status %d", page, ErrNetwork, resp.StatusCode)
	}

	return parsePage(resp.Body), nil
}

func parsePage(body []byte) Page {
	var p Page

	entries := gjson.GetBytes(body, "data")
	if !entries.Exists() {
		entries = gjson.GetBytes(body, "results")
	}
	for _, e := range entries.Array() {
		p.Records = append(p.Records, NewRecord([]byte(e.Raw)))
	}

	meta := gjson.GetBytes(body, "meta.last_page")
	if !meta.Exists() {
		meta = gjson.GetBytes(body, "meta.lastPage")
	}
	p.LastPage = int(meta.Int())

	return p
}

// Records walks the catalogue from page 1 and returns the raw records in
// listing order.
//
// The last-page bound is captured from the first page's metadata; when
// absent, the catalogue is assumed to be a single page. A positive limit
// stops consumption early, even mid-page. The configured delay is inserted
// between page requests but skipped after the final one.
func (c *Client) Records(ctx context.Context, limit int) ([]Record, error) {
	var records []Record
	page := 1
	lastPage := 0

	for {
		p, err := c.FetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if lastPage == 0 {
			lastPage = p.LastPage
			if lastPage == 0 {
				lastPage = page
			}
		}

		c.log.Info("fetched catalogue page", "page", page, "of", lastPage, "entries", len(p.Records))
		observability.Download().OnPageFetched(ctx, page, len(p.Records))

		for _, rec := range p.Records {
			records = append(records, rec)
			if limit > 0 && len(records) >= limit {
				return records, nil
			}
		}

		page++
		if page > lastPage {
			return records, nil
		}
		if c.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.Delay):
			}
		}
	}
}

// Enrich fetches the per-item detail payload for rec and merges it under
// the summary record (summary keys win on conflict).
//
// Enrichment is best-effort: a record without a slug, a failed detail
// request, or an unparsable payload all return the original record with a
// warning rather than an error. Detail payloads are served from the cache
// when a fresh entry exists.
func (c *Client) Enrich(ctx context.Context, rec Record) Record {
	slug := rec.Slug()
	if slug == "" {
		return rec
	}

	key := cache.Key("detail", slug)
	if data, hit, err := c.store.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "detail")
		return c.merge(rec, NewRecord(data), slug)
	}
	observability.Cache().OnCacheMiss(ctx, "detail")

	resp, err := c.getter.Get(ctx, c.cfg.BaseURL+presetsPath+"/"+url.PathEscape(slug), nil)
	if err != nil {
		c.log.Warn("failed to fetch preset detail", "slug", slug, "error", err)
		return rec
	}
	if resp.StatusCode == 404 {
		c.log.Warn("preset detail missing", "slug", slug, "error", ErrNotFound)
		return rec
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("failed to fetch preset detail", "slug", slug, "status", resp.StatusCode)
		return rec
	}
	if !gjson.ParseBytes(resp.Body).IsObject() {
		c.log.Warn("preset detail is not a JSON object", "slug", slug)
		return rec
	}

	if err := c.store.Set(ctx, key, resp.Body, c.cfg.DetailTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "detail", len(resp.Body))
	}

	return c.merge(rec, NewRecord(resp.Body), slug)
}

func (c *Client) merge(rec, detail Record, slug string) Record {
	merged, err := rec.Merge(detail)
	if err != nil {
		c.log.Warn("failed to merge preset detail", "slug", slug, "error", err)
		return rec
	}
	return merged
}
