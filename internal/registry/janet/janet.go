// Package janet drives the web site of the Jisc domain registry.
//
// The site is an ASP.NET WebForms application with no API. Pages are found by
// the ids of their elements and every button is a form post back, so this
// package behaves like a very patient browser: it fetches a page, fills in the
// form it contains, and posts it back with the clicked control. The ids are
// likely to change whenever the site is revised.
package janet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/publicsuffix"

	"github.com/ipreg/superglue/internal/creds"
	"github.com/ipreg/superglue/internal/domain"
	"github.com/ipreg/superglue/internal/pp"
	"github.com/ipreg/superglue/internal/registry"
)

// DefaultURL is the front page of the registry.
const DefaultURL = "https://domainregistry.jisc.ac.uk/dns"

const serviceTitle = "Domain Registry Service"

var _ registry.Gateway = (*Gateway)(nil)

// Gateway is a logged-in session with the registry. It implements [registry.Gateway].
type Gateway struct {
	baseURL *url.URL
	client  *retryablehttp.Client
	timeout time.Duration
	creds   creds.Credentials

	page     *page
	loggedIn bool

	// the domain whose details or modification form is on the current page
	current   domain.Name
	onForm    bool
	slotValue map[string]string
}

// New creates a session. Nothing is sent until the first call.
func New(ppfmt pp.PP, rawURL string, timeout time.Duration, c creds.Credentials) (*Gateway, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the registry URL %q", rawURL)
		return nil, fmt.Errorf("bad registry URL %q", rawURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create a cookie jar: %w", err)
	}

	// The registry is a sequence of stateful pages. A request repeated after
	// a timeout could submit a modification twice, so nothing is retried.
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	client.HTTPClient.Jar = jar

	return &Gateway{
		baseURL:   u,
		client:    client,
		timeout:   timeout,
		creds:     c,
		page:      nil,
		loggedIn:  false,
		current:   "",
		onForm:    false,
		slotValue: nil,
	}, nil
}

// Describe gives the address of the registry.
func (g *Gateway) Describe() string { return g.baseURL.Redacted() }

// do sends one request and makes the response the current page.
func (g *Gateway) do(ctx context.Context, ppfmt pp.PP, step string, r request) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var body io.Reader
	if r.method == http.MethodPost {
		body = strings.NewReader(r.values.Encode())
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, r.method, r.url.String(), body)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare request to %s: %w", step, r.url.Redacted(), err)
	}
	if r.method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", step, context.DeadlineExceeded)
		}
		return fmt.Errorf("%s: %w", step, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected HTTP status %s", step, resp.Status)
	}

	p, err := parsePage(resp.Request.URL, resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}

	g.page = p
	ppfmt.Debugf(pp.EmojiRegistry, "Loaded %s: %s", step, p.heading())
	return nil
}

// fill takes the form on the current page, lets edit change it, and clicks on the control.
func (g *Gateway) fill(ctx context.Context, ppfmt pp.PP, step string, clickID string, edit func(*form) error) error {
	f, err := g.page.form()
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	if edit != nil {
		if err := edit(f); err != nil {
			return fmt.Errorf("%s: %w", step, err)
		}
	}
	r, err := f.clickID(clickID)
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	return g.do(ctx, ppfmt, step, r)
}

func (g *Gateway) login(ctx context.Context, ppfmt pp.PP) error {
	if g.loggedIn {
		return nil
	}

	ppfmt.Infof(pp.EmojiRegistry, "Logging in to %s as %s", g.Describe(), g.creds.User)
	if err := g.do(ctx, ppfmt, "login page", request{method: http.MethodGet, url: g.baseURL, values: nil}); err != nil {
		return err
	}

	err := g.fill(ctx, ppfmt, "greeting page", idLoginButton, func(f *form) error {
		if err := f.set(idUserName, g.creds.User); err != nil {
			return err
		}
		return f.set(idPassword, g.creds.Pass)
	})
	if err != nil {
		return err
	}

	if title := g.page.title(); title != serviceTitle {
		return fmt.Errorf("login failed (page title %q)", title)
	}

	g.loggedIn = true
	return nil
}

// menu follows one of the links shown on every page after logging in.
func (g *Gateway) menu(ctx context.Context, ppfmt pp.PP, step string, id string) error {
	g.current, g.onForm = "", false
	return g.fill(ctx, ppfmt, step, id, nil)
}
