package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/atomic"
)

// ErrFetching is returned when a fetch is already in flight.
var ErrFetching = errors.New("fetch: already in progress")

type fetchStatus = int32

const (
	unfetched fetchStatus = iota
	fetching
	fetched
)

// HTTP fetches a document over HTTP. The response body is cached so repeated
// Fetch calls hit the network once.
type HTTP struct {
	status *atomic.Int32
	client *http.Client
	req    *http.Request
	buffer bytes.Buffer
	meta   map[string]string
}

var _ Fetcher = (*HTTP)(nil)

type HTTPConfig struct {
	client  *http.Client
	link    string
	method  string
	payload io.Reader
}

type HTTPOption func(*HTTPConfig)

func WithHTTPMethod(method string) HTTPOption {
	return func(h *HTTPConfig) {
		h.method = method
	}
}

func WithHTTPURL(link string) HTTPOption {
	return func(h *HTTPConfig) {
		h.link = link
	}
}

func WithHTTPPayload(payload io.Reader) HTTPOption {
	return func(h *HTTPConfig) {
		h.payload = payload
	}
}

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTPConfig) {
		h.client = client
	}
}

// NewHTTP creates an HTTP fetcher. The method defaults to GET.
func NewHTTP(opts ...HTTPOption) (*HTTP, error) {
	var cfg HTTPConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.method == "" {
		cfg.method = http.MethodGet
	}
	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}
	req, err := http.NewRequest(cfg.method, cfg.link, cfg.payload)
	if err != nil {
		return nil, err
	}
	return &HTTP{
		status: atomic.NewInt32(unfetched),
		client: cfg.client,
		req:    req,
		meta: map[string]string{
			"source": "http",
			"url":    cfg.link,
			"method": cfg.method,
		},
	}, nil
}

func (h *HTTP) Fetch(ctx context.Context) ([]byte, error) {
	switch h.status.Load() {
	case fetching:
		return nil, ErrFetching
	case fetched:
		return h.buffer.Bytes(), nil
	}
	h.status.Store(fetching)
	resp, err := h.client.Do(h.req.WithContext(ctx))
	if err != nil {
		h.status.Store(unfetched)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		h.status.Store(unfetched)
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}
	if _, err := io.Copy(&h.buffer, resp.Body); err != nil {
		h.buffer.Reset()
		h.status.Store(unfetched)
		return nil, err
	}
	h.status.Store(fetched)
	return h.buffer.Bytes(), nil
}

func (h *HTTP) Meta() map[string]string {
	return h.meta
}
