// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/oneconcern/corpusy/pkg/storage/status"
	"github.com/spf13/afero"
)

// New creates a new local file system backed storage model.
//
// Keys are paths on fs. When fs is nil, the OS file system is used.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	info, err := l.Stat(ctx, key)
	if err != nil {
		return false, err
	}
	return info.IsFile(), nil
}

func (l *localFS) Stat(_ context.Context, key string) (storage.Info, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return storage.Info{}, nil
		}
		return storage.Info{}, err
	}
	return storage.Info{Exists: true, IsDir: fi.IsDir(), Size: fi.Size()}, nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	info, err := l.Stat(ctx, key)
	if err != nil {
		return nil, err
	}
	if !info.Exists {
		return nil, status.ErrNotExists.Wrapf("%q", key)
	}
	if info.IsDir {
		return nil, status.ErrIsDirectory.Wrapf("%q", key)
	}
	return l.fs.Open(key)
}

func (l *localFS) Put(_ context.Context, key string, source io.Reader) error {
	dir := filepath.Dir(key)
	if dir != "" {
		if err := l.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("ensuring directories for %q: %w", key, err)
		}
	}
	target, err := l.fs.OpenFile(key, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create record for %q: %w", key, err)
	}
	if _, err = io.Copy(target, source); err != nil {
		_ = target.Close()
		return fmt.Errorf("write record for %q: %w", key, err)
	}
	return target.Close()
}

func (l *localFS) Delete(_ context.Context, key string) error {
	if err := l.fs.Remove(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (l *localFS) Keys(_ context.Context) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		res = append(res, path)
		return nil
	})
	if e != nil {
		return nil, e
	}
	return res, nil
}

func (l *localFS) String() string {
	return describe("localfs", l.fs)
}

func describe(name string, fs afero.Fs) string {
	switch fs := fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return name
		}
		return name + "@" + pp
	default:
		return name
	}
}

/* atomic local storage implementation.
 * use a decorator pattern to implement atomic Put()s via afero.Fs.Rename():
 * objects are written next to their final location under a staging name,
 * then Rename()d into place. An interrupted Put never leaves a truncated
 * object under the final key, so a half-forwarded archive is never
 * mistaken for a complete one.
 */

const putStageSuffix = ".put-stage"

func maybeInvalidKey(key string) error {
	if strings.HasSuffix(key, putStageSuffix) {
		return status.ErrInvalidResource.Wrapf("key %q conflicts with put staging suffix %q", key, putStageSuffix)
	}
	return nil
}

// NewAtomic creates a local store whose Put operations are atomic
func NewAtomic(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFSAtomic{
		storeImpl: localFS{fs: fs},
	}
}

type localFSAtomic struct {
	storeImpl localFS
}

func (l *localFSAtomic) Has(ctx context.Context, key string) (bool, error) {
	if err := maybeInvalidKey(key); err != nil {
		return false, err
	}
	return l.storeImpl.Has(ctx, key)
}

func (l *localFSAtomic) Stat(ctx context.Context, key string) (storage.Info, error) {
	if err := maybeInvalidKey(key); err != nil {
		return storage.Info{}, err
	}
	return l.storeImpl.Stat(ctx, key)
}

func (l *localFSAtomic) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := maybeInvalidKey(key); err != nil {
		return nil, err
	}
	return l.storeImpl.Get(ctx, key)
}

func (l *localFSAtomic) Delete(ctx context.Context, key string) error {
	if err := maybeInvalidKey(key); err != nil {
		return err
	}
	return l.storeImpl.Delete(ctx, key)
}

func (l *localFSAtomic) Keys(ctx context.Context) ([]string, error) {
	ks, err := l.storeImpl.Keys(ctx)
	if err != nil {
		return ks, err
	}
	/* https://github.com/golang/go/wiki/SliceTricks#filtering-without-allocating */
	filtered := ks[:0]
	for _, key := range ks {
		if maybeInvalidKey(key) == nil {
			filtered = append(filtered, key)
		}
	}
	return filtered, nil
}

func (l *localFSAtomic) Put(ctx context.Context, key string, source io.Reader) error {
	if err := maybeInvalidKey(key); err != nil {
		return err
	}
	staged := key + putStageSuffix
	if err := l.storeImpl.Put(ctx, staged, source); err != nil {
		_ = l.storeImpl.Delete(ctx, staged)
		return err
	}
	return l.storeImpl.fs.Rename(staged, key)
}

func (l *localFSAtomic) String() string {
	return describe("localfs-atomic", l.storeImpl.fs)
}
