package catalogue

import "errors"

// Sentinel errors of the catalogue client. Use errors.Is to distinguish
// them; the client never retries a failed request.
var (
	// ErrNetwork is returned for transport failures (timeouts, connection
	// errors) and unexpected non-2xx statuses.
	ErrNetwork = errors.New("network error")

	// ErrBlocked is returned for a 403 response, which in practice means the
	// site's anti-bot protection refused the request rather than a real
	// permission problem.
	ErrBlocked = errors.New("access denied by bakkesplugins.com " +
		"(likely an anti-bot block: retry from a residential connection, " +
		"a VPN, or plug in a Cloudflare-capable transport)")

	// ErrNotFound marks a 404 from a detail endpoint. Enrichment treats it
	// as a recoverable miss rather than a run failure.
	ErrNotFound = errors.New("resource not found")
)
