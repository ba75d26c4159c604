// Copyright © 2018 One Concern

// Package acquire makes the contents of a corpus archive available on local storage.
//
// Acquisition runs as a small state machine:
//
//	CHECK_LOCAL -> CHECK_REMOTE -> EXTRACT -> DONE
//	                    |
//	                    +-> FORWARD_THEN_RETRY -> CHECK_REMOTE (once)
//
// Contents already present are never checked against their archive.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	corpuserrors "github.com/oneconcern/corpusy/pkg/errors"
	"github.com/oneconcern/corpusy/pkg/extract"
	"github.com/oneconcern/corpusy/pkg/forward"
	"github.com/oneconcern/corpusy/pkg/metrics"
	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/oneconcern/corpusy/pkg/transport"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultChunkSize is the size of the chunks archives are staged with
const DefaultChunkSize = 100 * metrics.MB

var (
	// ErrArchiveUnavailable is returned when the archive cannot be found, nor forwarded
	ErrArchiveUnavailable = corpuserrors.New("archive unavailable")

	// ErrStorageTypeMismatch is returned when a file stands where a directory is expected, or conversely
	ErrStorageTypeMismatch = corpuserrors.New("storage type mismatch")
)

// Acquirer fetches and extracts corpus archives
type Acquirer struct {
	source    Source
	fs        afero.Fs
	l         *zap.Logger
	chunkSize int
	extract   Extractor
	metrics   *metrics.Acquisition
}

// New acquirer. By default, archives are reached with a transport on the OS file system.
func New(opts ...Option) *Acquirer {
	a := &Acquirer{
		fs:        afero.NewOsFs(),
		l:         zap.NewNop(),
		chunkSize: DefaultChunkSize,
		extract:   extract.Extract,
	}
	for _, apply := range opts {
		apply(a)
	}
	if a.source == nil {
		a.source = transport.New(transport.Fs(a.fs), transport.Logger(a.l))
	}
	return a
}

// GetContents ensures the contents of the archive at archive are extracted in the contents directory.
//
// When the archive is missing and download is enabled, fwd is called once to place it
// at its address, which is then checked again once.
func (a *Acquirer) GetContents(ctx context.Context, archive, contents string, download bool, fwd forward.Forwarder) (err error) {
	outcome := metrics.OutcomeFailed
	defer func() {
		a.metrics.Outcome(outcome)
	}()
	logger := a.l.With(zap.String("archive", archive), zap.String("contents", contents), zap.Bool("download", download))

	// CHECK_LOCAL
	fi, err := a.fs.Stat(contents)
	switch {
	case err == nil && fi.IsDir():
		logger.Debug("contents already present")
		outcome = metrics.OutcomeLocal
		return nil
	case err == nil:
		outcome = metrics.OutcomeMismatch
		return ErrStorageTypeMismatch.Wrapf("contents %s is a file, expected a directory", contents)
	case !os.IsNotExist(err):
		return fmt.Errorf("checking contents %s: %w", contents, err)
	}

	// CHECK_REMOTE
	info, err := a.source.Stat(ctx, archive)
	if err != nil {
		return fmt.Errorf("checking archive %s: %w", archive, err)
	}
	if info.IsDir {
		outcome = metrics.OutcomeMismatch
		return ErrStorageTypeMismatch.Wrapf("archive %s is a directory, expected a file", archive)
	}

	if !info.Exists {
		if !download {
			outcome = metrics.OutcomeUnavailable
			return ErrArchiveUnavailable.Wrapf("archive %s does not exist (download=%t): enable download to fetch it from its origin", archive, download)
		}

		// FORWARD_THEN_RETRY
		if info, err = a.forwardThenRetry(ctx, logger, archive, download, fwd); err != nil {
			if errors.Is(err, ErrArchiveUnavailable) {
				outcome = metrics.OutcomeUnavailable
			}
			return err
		}
	}

	// EXTRACT
	logger.Info("extracting archive", zap.Int64("size", info.Size))
	if err = a.stageAndExtract(ctx, archive, contents); err != nil {
		return err
	}
	outcome = metrics.OutcomeExtracted
	logger.Info("archive extracted")
	return nil
}

func (a *Acquirer) forwardThenRetry(ctx context.Context, logger *zap.Logger, archive string, download bool, fwd forward.Forwarder) (storage.Info, error) {
	if fwd == nil {
		return storage.Info{}, ErrArchiveUnavailable.Wrapf("archive %s does not exist (download=%t) and has no forwarder", archive, download)
	}

	logger.Info("archive missing, forwarding it from its origin")
	a.metrics.Forwarded()
	if err := fwd(ctx); err != nil {
		return storage.Info{}, ErrArchiveUnavailable.Wrap(fmt.Errorf("forwarding archive %s (download=%t): %w", archive, download, err))
	}

	info, err := a.source.Stat(ctx, archive)
	if err != nil {
		return storage.Info{}, fmt.Errorf("checking archive %s after forward: %w", archive, err)
	}
	switch {
	case info.IsDir:
		return storage.Info{}, ErrArchiveUnavailable.Wrap(
			ErrStorageTypeMismatch.Wrapf("archive %s is a directory after forward (download=%t): forward attempt exhausted", archive, download))
	case !info.Exists:
		return storage.Info{}, ErrArchiveUnavailable.Wrapf("archive %s still missing after forward (download=%t): forward attempt exhausted", archive, download)
	}
	return info, nil
}

// stageAndExtract copies the archive to a temporary file in chunks, then extracts it
func (a *Acquirer) stageAndExtract(ctx context.Context, archive, contents string) (err error) {
	if err = a.fs.MkdirAll(contents, 0700); err != nil {
		return fmt.Errorf("creating contents %s: %w", contents, err)
	}

	staged, err := afero.TempFile(a.fs, "", "corpusy-archive-")
	if err != nil {
		return fmt.Errorf("staging archive %s: %w", archive, err)
	}
	stagedName := staged.Name()
	defer func() {
		if rerr := a.fs.Remove(stagedName); rerr != nil && !os.IsNotExist(rerr) {
			err = multierr.Append(err, rerr)
		}
	}()

	n, err := a.stage(ctx, archive, staged)
	err = multierr.Append(err, staged.Close())
	if err != nil {
		return fmt.Errorf("staging archive %s: %w", archive, err)
	}
	a.metrics.Staged(n)
	a.l.Debug("archive staged", zap.String("archive", archive), zap.Int64("bytes", n))

	if err = a.extract(a.fs, stagedName, contents); err != nil {
		return fmt.Errorf("extracting archive %s into %s: %w", archive, contents, err)
	}
	return nil
}

func (a *Acquirer) stage(ctx context.Context, archive string, w io.Writer) (n int64, err error) {
	rdr, err := a.source.Open(ctx, archive)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = multierr.Append(err, rdr.Close())
	}()

	chunk := make([]byte, a.chunkSize)
	for {
		if err = ctx.Err(); err != nil {
			return n, err
		}
		read, rerr := io.ReadFull(rdr, chunk)
		if read > 0 {
			written, werr := w.Write(chunk[:read])
			n += int64(written)
			if werr != nil {
				return n, werr
			}
		}
		switch {
		case rerr == nil:
		case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
			return n, nil
		default:
			return n, rerr
		}
	}
}
