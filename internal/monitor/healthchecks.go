package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ipreg/superglue/internal/pp"
)

// Healthchecks pings a check of Healthchecks.io or a compatible server.
type Healthchecks struct {
	// The endpoint of the check, such as https://hc-ping.com/<uuid>
	BaseURL *url.URL

	// Timeout for each ping
	Timeout time.Duration

	// MaxRetries is the number of retries after the first failed attempt.
	MaxRetries int
}

var _ Monitor = Healthchecks{} //nolint:exhaustruct

const (
	// HealthchecksDefaultTimeout is the default timeout for a Healthchecks ping.
	HealthchecksDefaultTimeout = 10 * time.Second

	// HealthchecksDefaultMaxRetries is the default number of retries of a ping.
	HealthchecksDefaultMaxRetries = 5

	// maxExitStatus is the largest exit status Healthchecks accepts.
	maxExitStatus = 255
)

// NewHealthchecks creates a new Healthchecks monitor.
func NewHealthchecks(ppfmt pp.PP, rawURL string) (Healthchecks, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the Healthchecks URL (redacted)")
		return Healthchecks{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "" && u.RawQuery == "" && u.Fragment == "") {
		ppfmt.Noticef(pp.EmojiUserError, `The Healthchecks URL (redacted) does not look like a valid URL`)
		ppfmt.Noticef(pp.EmojiUserError, `A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`)
		return Healthchecks{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Noticef(pp.EmojiUserWarning, "The Healthchecks URL (redacted) uses HTTP; please consider using HTTPS")

	case "https":
		// HTTPS is good!

	default:
		ppfmt.Noticef(pp.EmojiUserError, `The Healthchecks URL (redacted) does not look like a valid URL`)
		return Healthchecks{}, false //nolint:exhaustruct
	}

	return Healthchecks{
		BaseURL:    u,
		Timeout:    HealthchecksDefaultTimeout,
		MaxRetries: HealthchecksDefaultMaxRetries,
	}, true
}

// Describe calls the callback with the service name "Healthchecks".
func (h Healthchecks) Describe(callback func(service, params string)) {
	callback("Healthchecks", "(URL redacted)")
}

func (h Healthchecks) ping(ctx context.Context, ppfmt pp.PP, endpoint string, message string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	u := h.BaseURL.JoinPath(endpoint)
	describe := "Healthchecks"
	if endpoint != "" {
		describe = fmt.Sprintf("Healthchecks (/%s)", endpoint)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(message))
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to %s: %v", describe, err)
		return false
	}

	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = h.MaxRetries

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to send HTTP(S) request to %s: %v", describe, err)
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadLength))
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to read the response from %s: %v", describe, err)
		return false
	}

	if resp.StatusCode != http.StatusOK {
		ppfmt.Noticef(pp.EmojiError, "Failed to ping %s; got response code: %d %s",
			describe, resp.StatusCode, strings.TrimSpace(string(body)))
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged %s", describe)
	return true
}

// Start pings /start.
func (h Healthchecks) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "start", message)
}

// Success pings the base URL.
func (h Healthchecks) Success(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "", message)
}

// Failure pings /fail.
func (h Healthchecks) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "fail", message)
}

// Log pings /log.
func (h Healthchecks) Log(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "log", message)
}

// ExitStatus pings /<code>.
func (h Healthchecks) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	if code < 0 || code > maxExitStatus {
		ppfmt.Noticef(pp.EmojiImpossible, "Exit code (%d) not within the range 0-%d", code, maxExitStatus)
		return false
	}
	return h.ping(ctx, ppfmt, fmt.Sprintf("%d", code), message)
}
