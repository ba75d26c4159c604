// Package web provides a read-only store over plain HTTP(S) servers.
//
// This is how archives published on a corpus owner's web site are reached.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/oneconcern/corpusy/pkg/storage/status"
)

// Option for the web store
type Option func(*webStore)

// HTTPClient overrides the default http client
func HTTPClient(client *http.Client) Option {
	return func(w *webStore) {
		if client != nil {
			w.client = client
		}
	}
}

// New web store, rooted at some base URL such as https://data.keithito.com
func New(baseURL string, opts ...Option) storage.Store {
	w := &webStore{
		base:   strings.TrimSuffix(baseURL, "/"),
		client: http.DefaultClient,
	}
	for _, apply := range opts {
		apply(w)
	}
	return w
}

type webStore struct {
	base   string
	client *http.Client
}

func (w *webStore) String() string {
	return w.base
}

func (w *webStore) url(key string) string {
	return w.base + "/" + strings.TrimPrefix(key, "/")
}

func (w *webStore) do(ctx context.Context, method, key string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, w.url(key), nil)
	if err != nil {
		return nil, status.ErrInvalidResource.Wrap(err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, status.ErrStorageAPI.Wrap(err)
	}
	return resp, nil
}

func (w *webStore) Has(ctx context.Context, key string) (bool, error) {
	info, err := w.Stat(ctx, key)
	if err != nil {
		return false, err
	}
	return info.IsFile(), nil
}

// Stat issues a HEAD request. A server has no notion of directories, so every
// key found is an object.
func (w *webStore) Stat(ctx context.Context, key string) (storage.Info, error) {
	resp, err := w.do(ctx, http.MethodHead, key)
	if err != nil {
		return storage.Info{}, err
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return storage.Info{}, nil
	case resp.StatusCode >= 400:
		return storage.Info{}, statusError(resp, key)
	}
	size := resp.ContentLength
	if size < 0 {
		size = 0
	}
	return storage.Info{Exists: true, Size: size}, nil
}

func (w *webStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := w.do(ctx, http.MethodGet, key)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		_ = resp.Body.Close()
		return nil, statusError(resp, key)
	}
	return resp.Body, nil
}

func (w *webStore) Put(context.Context, string, io.Reader) error {
	return status.ErrNotSupported.Wrapf("put on read-only store %s", w.base)
}

func (w *webStore) Delete(context.Context, string) error {
	return status.ErrNotSupported.Wrapf("delete on read-only store %s", w.base)
}

func (w *webStore) Keys(context.Context) ([]string, error) {
	return nil, status.ErrNotSupported.Wrapf("listing keys on %s", w.base)
}

func statusError(resp *http.Response, key string) error {
	detail := fmt.Errorf("%s: %s", key, resp.Status)
	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return status.ErrNotExists.Wrap(detail)
	case http.StatusUnauthorized:
		return status.ErrUnauthorized.Wrap(detail)
	case http.StatusForbidden:
		return status.ErrForbidden.Wrap(detail)
	default:
		return status.ErrStorageAPI.Wrap(detail)
	}
}
