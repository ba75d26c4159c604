// Package forward moves corpus archives from their origin to a storage address.
//
// A Forwarder is handed to the acquirer, which calls it at most once when an
// archive is missing from its expected address.
package forward

import (
	"context"
	"io"

	"github.com/oneconcern/corpusy/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrConfirmationTokenMissing is returned when a large file host did not hand out a confirmation token
	ErrConfirmationTokenMissing = errors.New("download confirmation token missing")

	// ErrTransfer is returned when a forward transfer fails
	ErrTransfer = errors.New("forward transfer failed")

	// ErrOriginUnavailable is returned when an archive cannot be obtained automatically from its origin
	ErrOriginUnavailable = errors.New("archive origin not available for automatic download")
)

// Forwarder places an archive at its storage address
type Forwarder func(context.Context) error

// Copier copies objects between addresses
type Copier interface {
	Copy(ctx context.Context, source, destination string) error
}

// Putter writes objects at some address
type Putter interface {
	Put(ctx context.Context, destination string, rdr io.Reader) error
}

// Copy forwards the archive at source to destination
func Copy(copier Copier, source, destination string, logger *zap.Logger) Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context) error {
		logger.Info("forwarding archive", zap.String("from", source), zap.String("to", destination))
		if err := copier.Copy(ctx, source, destination); err != nil {
			return ErrTransfer.Wrap(err)
		}
		logger.Info("archive forwarded", zap.String("to", destination))
		return nil
	}
}

// Unavailable is the forwarder of archives which must be obtained manually
func Unavailable(reason string) Forwarder {
	return func(context.Context) error {
		return ErrOriginUnavailable.Wrapf("%s", reason)
	}
}
