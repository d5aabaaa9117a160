package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cjl525/presetpull/pkg/observability"
)

// httpTimeout bounds a single catalogue or detail request.
const httpTimeout = 30 * time.Second

// Response is the transport-agnostic result of a GET request.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Getter is the HTTP capability the catalogue client depends on.
//
// The default implementation wraps net/http with browser-like headers; tests
// substitute a stub, and callers behind aggressive anti-bot protection can
// plug in a transport that clears those challenges. Everything downstream of
// the Getter is transport-agnostic.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) (*Response, error)
}

// defaultHeaders mimic a desktop browser. bakkesplugins.com sits behind
// Cloudflare and rejects obviously non-browser clients outright.
var defaultHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0 Safari/537.36",
	"Accept": "application/json, text/plain, */*",
}

// httpGetter is the default Getter backed by net/http.
type httpGetter struct {
	client  *http.Client
	headers map[string]string
}

// NewHTTPGetter creates the default Getter with a standard timeout and
// browser-like request headers.
func NewHTTPGetter() Getter {
	return &httpGetter{
		client:  &http.Client{Timeout: httpTimeout},
		headers: defaultHeaders,
	}
}

// Get performs a single GET request. There are no retries: a failed call is
// the caller's problem to surface, not to paper over.
func (g *httpGetter) Get(ctx context.Context, rawURL string, params url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	for k, v := range g.headers {
		req.Header.Set(k, v)
	}

	observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := g.client.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
