package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Pack writes the contents of srcDir as a zip archive, with paths relative to srcDir
func Pack(fs afero.Fs, srcDir string, w io.Writer) (err error) {
	zw := zip.NewWriter(w)
	defer func() {
		err = multierr.Append(err, zw.Close())
	}()

	return afero.Walk(fs, srcDir, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)
		if info.IsDir() {
			_, err = zw.Create(name + "/")
			return err
		}
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = name
		hdr.Method = zip.Deflate
		entry, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		return copyFile(fs, p, entry)
	})
}

func copyFile(fs afero.Fs, p string, w io.Writer) (err error) {
	file, err := fs.Open(p)
	if err != nil {
		return fmt.Errorf("packing %s: %w", p, err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	_, err = io.Copy(w, file)
	return err
}
