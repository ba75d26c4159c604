package acquire

import (
	"context"
	"io"

	"github.com/oneconcern/corpusy/pkg/metrics"
	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Source gives access to archives by address
type Source interface {
	Stat(ctx context.Context, address string) (storage.Info, error)
	Open(ctx context.Context, address string) (io.ReadCloser, error)
}

// Extractor unpacks an archive file into a directory
type Extractor func(fs afero.Fs, archivePath, destDir string) error

// Option for the acquirer
type Option func(*Acquirer)

// Transport sets the source of archives
func Transport(source Source) Option {
	return func(a *Acquirer) {
		if source != nil {
			a.source = source
		}
	}
}

// Fs sets the file system holding contents and staged archives
func Fs(fs afero.Fs) Option {
	return func(a *Acquirer) {
		if fs != nil {
			a.fs = fs
		}
	}
}

// Logger for the acquirer
func Logger(l *zap.Logger) Option {
	return func(a *Acquirer) {
		if l != nil {
			a.l = l
		}
	}
}

// ChunkSize sets the size of the chunks archives are staged with
func ChunkSize(size int) Option {
	return func(a *Acquirer) {
		if size > 0 {
			a.chunkSize = size
		}
	}
}

// WithExtractor replaces the default archive extractor
func WithExtractor(extractor Extractor) Option {
	return func(a *Acquirer) {
		if extractor != nil {
			a.extract = extractor
		}
	}
}

// Metrics collects acquisition counters
func Metrics(m *metrics.Acquisition) Option {
	return func(a *Acquirer) {
		a.metrics = m
	}
}
