package presets

import (
	"context"
	"fmt"
	"io"

	"github.com/oneconcern/corpusy/pkg/extract"
	"github.com/oneconcern/corpusy/pkg/forward"
	"github.com/spf13/afero"
)

// SaveArchive zips a contents directory and uploads it to archiveAddr.
//
// It is the reverse of acquisition: a locally prepared corpus (e.g. AdHoc)
// can then be shared as an archive.
func SaveArchive(ctx context.Context, putter forward.Putter, fs afero.Fs, contentsDir, archiveAddr string) error {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	isDir, err := afero.IsDir(fs, contentsDir)
	if err != nil {
		return fmt.Errorf("checking contents %s: %w", contentsDir, err)
	}
	if !isDir {
		return fmt.Errorf("contents %s is not a directory", contentsDir)
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(extract.Pack(fs, contentsDir, pw))
	}()

	if err := putter.Put(ctx, archiveAddr, pr); err != nil {
		_ = pr.CloseWithError(err)
		return fmt.Errorf("saving archive %s: %w", archiveAddr, err)
	}
	return nil
}
