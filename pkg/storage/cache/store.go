// Package cache wraps a remote store with a local, content-addressed file cache.
//
// Objects retrieved from the remote backend are staged on the cache file system
// before being served: large archives are never held in memory, and a second
// read of the same object does not hit the network.
package cache

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const partialSuffix = ".partial"

// Option for the cache
type Option func(*cached)

// Logger for the cache
func Logger(l *zap.Logger) Option {
	return func(c *cached) {
		if l != nil {
			c.l = l
		}
	}
}

// New caching store in front of backend, storing objects on fs
func New(backend storage.Store, fs afero.Fs, opts ...Option) storage.Store {
	c := &cached{
		backend: backend,
		fs:      fs,
		l:       zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

type cached struct {
	backend storage.Store
	fs      afero.Fs
	l       *zap.Logger
}

// entry locates the cached copy of some key: entries are spread over 256 folders
func (c *cached) entry(key string) string {
	sum := blake3.Sum256([]byte(c.backend.String() + "\x00" + key))
	digest := hex.EncodeToString(sum[:])
	return path.Join(digest[:2], digest)
}

func (c *cached) lookup(key string) (os.FileInfo, bool) {
	fi, err := c.fs.Stat(c.entry(key))
	if err != nil || fi.IsDir() {
		return nil, false
	}
	return fi, true
}

func (c *cached) String() string {
	return c.backend.String()
}

func (c *cached) Has(ctx context.Context, key string) (bool, error) {
	if _, ok := c.lookup(key); ok {
		return true, nil
	}
	return c.backend.Has(ctx, key)
}

func (c *cached) Stat(ctx context.Context, key string) (storage.Info, error) {
	if fi, ok := c.lookup(key); ok {
		return storage.Info{Exists: true, Size: fi.Size()}, nil
	}
	return c.backend.Stat(ctx, key)
}

func (c *cached) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	entry := c.entry(key)
	if _, ok := c.lookup(key); !ok {
		if err := c.fill(ctx, key, entry); err != nil {
			return nil, err
		}
	} else {
		c.l.Debug("cache hit", zap.String("key", key), zap.String("store", c.backend.String()))
	}
	return c.fs.Open(entry)
}

func (c *cached) fill(ctx context.Context, key, entry string) (err error) {
	c.l.Debug("cache miss", zap.String("key", key), zap.String("store", c.backend.String()))
	rdr, err := c.backend.Get(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, rdr.Close())
	}()
	if err = c.stage(entry, rdr); err != nil {
		return fmt.Errorf("caching %q from %s: %w", key, c.backend, err)
	}
	return nil
}

// stage writes an entry under a partial name, then renames it into place
func (c *cached) stage(entry string, rdr io.Reader) error {
	if err := c.fs.MkdirAll(path.Dir(entry), 0700); err != nil {
		return err
	}
	partial := entry + partialSuffix
	file, err := c.fs.OpenFile(partial, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err = io.Copy(file, rdr); err != nil {
		_ = file.Close()
		_ = c.fs.Remove(partial)
		return err
	}
	if err = file.Close(); err != nil {
		_ = c.fs.Remove(partial)
		return err
	}
	return c.fs.Rename(partial, entry)
}

// Put stages the object in cache, then uploads the staged copy
func (c *cached) Put(ctx context.Context, key string, rdr io.Reader) (err error) {
	entry := c.entry(key)
	if err = c.stage(entry, rdr); err != nil {
		return fmt.Errorf("staging %q for %s: %w", key, c.backend, err)
	}
	file, err := c.fs.Open(entry)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	if err = c.backend.Put(ctx, key, file); err != nil {
		_ = c.fs.Remove(entry)
		return err
	}
	return nil
}

func (c *cached) Delete(ctx context.Context, key string) error {
	if err := c.fs.Remove(c.entry(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return c.backend.Delete(ctx, key)
}

func (c *cached) Keys(ctx context.Context) ([]string, error) {
	return c.backend.Keys(ctx)
}
