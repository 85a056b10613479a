package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/ipreg/superglue/internal/pp"
)

// UptimeKuma provides basic support of Uptime Kuma.
//
//   - Start, Log, and ExitStatus with 0 are no-ops.
//   - Success and Failure become status=up and status=down.
//   - The message of a success is replaced by "OK" to work around the
//     quirks of Uptime Kuma.
//   - The parameter ping is always empty.
type UptimeKuma struct {
	// The endpoint
	BaseURL *url.URL

	// Timeout for each ping
	Timeout time.Duration
}

var _ Monitor = UptimeKuma{} //nolint:exhaustruct

const (
	// UptimeKumaDefaultTimeout is the default timeout for a UptimeKuma ping.
	UptimeKumaDefaultTimeout = 10 * time.Second
)

// NewUptimeKuma creates a new UptimeKuma monitor.
func NewUptimeKuma(ppfmt pp.PP, rawURL string) (UptimeKuma, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the Uptime Kuma URL (redacted)")
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "") {
		ppfmt.Noticef(pp.EmojiUserError, `The Uptime Kuma URL (redacted) does not look like a valid URL`)
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	switch u.Scheme {
	case "http":
		ppfmt.Noticef(pp.EmojiUserWarning, "The Uptime Kuma URL (redacted) uses HTTP; please consider using HTTPS")

	case "https":
		// HTTPS is good!

	default:
		ppfmt.Noticef(pp.EmojiUserError, `The Uptime Kuma URL (redacted) does not look like a valid URL`)
		return UptimeKuma{}, false //nolint:exhaustruct
	}

	// By default, the URL provided by Uptime Kuma has this:
	//
	//     https://some.host.name/api/push/GFWB6vsHMg?status=up&msg=OK&ping=
	//
	// The following will check the query part
	if u.RawQuery != "" {
		q, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			ppfmt.Noticef(pp.EmojiUserError, `The Uptime Kuma URL (redacted) does not look like a valid URL`)
			return UptimeKuma{}, false //nolint:exhaustruct
		}

		for k, vs := range q {
			switch {
			case k == "status" && slices.Equal(vs, []string{"up"}): // status=up
			case k == "msg" && slices.Equal(vs, []string{"OK"}): // msg=OK
			case k == "ping" && slices.Equal(vs, []string{""}): // ping=

			default: // problematic case
				ppfmt.Noticef(pp.EmojiUserError,
					`The Uptime Kuma URL (redacted) contains an unexpected query %s=... and it will be ignored`,
					k)
			}
		}

		// Clear all queries to obtain the base URL
		u.RawQuery = ""
	}

	h := UptimeKuma{
		BaseURL: u,
		Timeout: UptimeKumaDefaultTimeout,
	}

	return h, true
}

// Describe calls the callback with the service name "Uptime Kuma".
func (h UptimeKuma) Describe(callback func(service, params string)) {
	callback("Uptime Kuma", "(URL redacted)")
}

// UptimeKumaResponse is for parsing the response from Uptime Kuma.
type UptimeKumaResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// UptimeKumaRequest is for assembling the request to Uptime Kuma.
type UptimeKumaRequest struct {
	Status string `url:"status"`
	Msg    string `url:"msg"`
	Ping   string `url:"ping"`
}

func (h UptimeKuma) ping(ctx context.Context, ppfmt pp.PP, param UptimeKumaRequest) bool {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	url := *h.BaseURL
	v, _ := query.Values(param)
	url.RawQuery = v.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}

	c := retryablehttp.NewClient()
	c.Logger = nil

	resp, err := c.Do(req)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to send HTTP(S) request to Uptime Kuma: %v", err)
		return false
	}
	defer resp.Body.Close()

	var parsedResp UptimeKumaResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxReadLength)).Decode(&parsedResp); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to parse the response from Uptime Kuma: %v", err)
		return false
	}
	if !parsedResp.OK {
		ppfmt.Noticef(pp.EmojiError, "Failed to ping Uptime Kuma: %s", parsedResp.Msg)
		return false
	}

	ppfmt.Infof(pp.EmojiPing, "Pinged Uptime Kuma")
	return true
}

// Start does nothing.
func (h UptimeKuma) Start(context.Context, pp.PP, string) bool { return true }

// Log does nothing.
func (h UptimeKuma) Log(context.Context, pp.PP, string) bool { return true }

// Success pings the server with status=up. The message is ignored and "OK" is
// used instead: Uptime Kuma seems to show only the first success message, and
// an outdated message staying in the UI would be misleading.
func (h UptimeKuma) Success(ctx context.Context, ppfmt pp.PP, _ string) bool {
	return h.ping(ctx, ppfmt, UptimeKumaRequest{Status: "up", Msg: "OK", Ping: ""})
}

// Failure pings the server with status=down and the message.
func (h UptimeKuma) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	if message == "" {
		// Without a non-empty message, Uptime Kuma either keeps the previous
		// message (even if it was for success) or assumes it is "OK".
		message = "Failing"
	}
	return h.ping(ctx, ppfmt, UptimeKumaRequest{Status: "down", Msg: message, Ping: ""})
}

// ExitStatus pings the server with status=down for a non-zero code.
func (h UptimeKuma) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	if code == 0 {
		return true
	}
	return h.Failure(ctx, ppfmt, message)
}
