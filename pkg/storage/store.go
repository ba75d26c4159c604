// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"

	"go.uber.org/multierr"
)

// Info describes an object as seen by a store.
//
// A key that is a prefix of other keys (a directory on a file system,
// a "folder" in an object store) is reported with Exists and IsDir.
type Info struct {
	Exists bool
	IsDir  bool
	Size   int64
}

// IsFile tells if the key designates a plain object
func (i Info) IsFile() bool {
	return i.Exists && !i.IsDir
}

// Store implementations know how to read and write objects addressed by a key.
//
// Typically this is something file system-like. Examples are S3, GCS, local FS, a web server...
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Stat(context.Context, string) (Info, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
}

// Copy streams an object from a source store to a destination store, without holding it in memory.
func Copy(ctx context.Context, sStore Store, source string, dStore Store, destination string) (err error) {
	reader, err := sStore.Get(ctx, source)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, reader.Close())
	}()
	return dStore.Put(ctx, destination, reader)
}
