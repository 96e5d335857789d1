package httpx

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Client is a small wrapper around http.Client shared by the provider
// clients: tuned transport defaults, optional proxy, and a default UserAgent.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New builds a Client with the given per-request timeout. proxyURL may be
// empty; a malformed proxy URL is ignored in favor of the environment proxy.
func New(timeout time.Duration, proxyURL string) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   3 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		ForceAttemptHTTP2:   true,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: "quotehub/1.0",
	}
}

// Do sends the request, applying the default UserAgent when the caller set
// none. The request should already carry the caller's context.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return c.HTTP.Do(req)
}

// Get is a convenience for a context-bound GET.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}
