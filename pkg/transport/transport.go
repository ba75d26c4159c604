// Copyright © 2018 One Concern

// Package transport routes archive addresses to storage backends.
//
// Every remote store is instrumented and staged through a local cache.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/oneconcern/corpusy/pkg/storage/cache"
	"github.com/oneconcern/corpusy/pkg/storage/gcs"
	"github.com/oneconcern/corpusy/pkg/storage/localfs"
	"github.com/oneconcern/corpusy/pkg/storage/sthree"
	"github.com/oneconcern/corpusy/pkg/storage/web"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// StoreFactory builds the store for some root (bucket, base URL)
type StoreFactory func(ctx context.Context, root string) (storage.Store, error)

// Transport gives access to objects by address, whatever the backend.
//
// Stores are built on first use and reused afterwards.
type Transport struct {
	fs         afero.Fs
	cacheFs    afero.Fs
	cacheDir   string
	l          *zap.Logger
	tracer     opentracing.Tracer
	credential string
	awsConfig  *aws.Config
	factories  map[string]StoreFactory

	mu     sync.Mutex
	local  storage.Store
	stores map[string]storage.Store
}

// New transport
func New(opts ...Option) *Transport {
	t := &Transport{
		fs:     afero.NewOsFs(),
		l:      zap.NewNop(),
		stores: make(map[string]storage.Store),
	}
	t.factories = map[string]StoreFactory{
		SchemeGCS: func(ctx context.Context, bucket string) (storage.Store, error) {
			return gcs.New(ctx, bucket, t.credential, gcs.Logger(t.l))
		},
		SchemeS3: func(_ context.Context, bucket string) (storage.Store, error) {
			cfg := t.awsConfig
			if cfg == nil {
				cfg = aws.NewConfig()
			}
			return sthree.New(sthree.Bucket(bucket), sthree.AWSConfig(cfg))
		},
		SchemeHTTP:  webFactory,
		SchemeHTTPS: webFactory,
	}
	for _, apply := range opts {
		apply(t)
	}
	t.local = storage.Instrument(t.tracer, t.l, localfs.NewAtomic(t.fs))
	return t
}

func webFactory(_ context.Context, base string) (storage.Store, error) {
	return web.New(base, web.HTTPClient(http.DefaultClient)), nil
}

// Store resolves the store serving some address
func (t *Transport) Store(ctx context.Context, addr Address) (storage.Store, error) {
	if addr.IsLocal() {
		return t.local, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := addr.Scheme + "://" + addr.Root
	if store, ok := t.stores[id]; ok {
		return store, nil
	}
	factory, ok := t.factories[addr.Scheme]
	if !ok {
		return nil, fmt.Errorf("no store available for scheme %q", addr.Scheme)
	}
	backend, err := factory(ctx, addr.Root)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", id, err)
	}
	cacheFs, err := t.cache()
	if err != nil {
		return nil, err
	}
	store := cache.New(storage.Instrument(t.tracer, t.l, backend), cacheFs, cache.Logger(t.l))
	t.stores[id] = store
	t.l.Debug("store ready", zap.String("store", id))
	return store, nil
}

// cache lazily allocates the cache file system, if none was given
func (t *Transport) cache() (afero.Fs, error) {
	if t.cacheFs != nil {
		return t.cacheFs, nil
	}
	osFs := afero.NewOsFs()
	dir, err := afero.TempDir(osFs, "", "corpusy-cache")
	if err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	t.cacheDir = dir
	t.cacheFs = afero.NewBasePathFs(osFs, dir)
	return t.cacheFs, nil
}

func (t *Transport) resolve(ctx context.Context, raw string) (storage.Store, Address, error) {
	addr, err := ParseAddress(raw)
	if err != nil {
		return nil, addr, err
	}
	store, err := t.Store(ctx, addr)
	return store, addr, err
}

// Stat some object
func (t *Transport) Stat(ctx context.Context, raw string) (storage.Info, error) {
	store, addr, err := t.resolve(ctx, raw)
	if err != nil {
		return storage.Info{}, err
	}
	return store.Stat(ctx, addr.Key)
}

// Open an object for reading
func (t *Transport) Open(ctx context.Context, raw string) (io.ReadCloser, error) {
	store, addr, err := t.resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, addr.Key)
}

// Put an object
func (t *Transport) Put(ctx context.Context, raw string, rdr io.Reader) error {
	store, addr, err := t.resolve(ctx, raw)
	if err != nil {
		return err
	}
	return store.Put(ctx, addr.Key, rdr)
}

// Copy an object from an address to another one
func (t *Transport) Copy(ctx context.Context, source, destination string) error {
	sStore, sAddr, err := t.resolve(ctx, source)
	if err != nil {
		return err
	}
	dStore, dAddr, err := t.resolve(ctx, destination)
	if err != nil {
		return err
	}
	t.l.Info("copying", zap.String("from", source), zap.String("to", destination))
	return storage.Copy(ctx, sStore, sAddr.Key, dStore, dAddr.Key)
}

// Close releases the cache directory allocated by the transport, if any
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stores = make(map[string]storage.Store)
	if t.cacheDir == "" {
		return nil
	}
	dir := t.cacheDir
	t.cacheDir = ""
	t.cacheFs = nil
	if err := afero.NewOsFs().RemoveAll(dir); err != nil {
		return fmt.Errorf("removing cache directory %s: %w", dir, err)
	}
	return nil
}
