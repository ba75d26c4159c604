// Package extract unpacks corpus archives onto a file system.
//
// The format is detected from the leading bytes of the archive, not from its name:
// archives are usually staged under a temporary name before being unpacked.
package extract

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"
	"go.uber.org/multierr"
)

// Format of an archive
type Format string

// Supported formats
const (
	FormatZip     Format = "zip"
	FormatTar     Format = "tar"
	FormatTarGz   Format = "tar.gz"
	FormatTarBz2  Format = "tar.bz2"
	FormatTarXz   Format = "tar.xz"
	FormatTarZstd Format = "tar.zst"
	FormatTarLz4  Format = "tar.lz4"
)

// ErrUnsafePath is returned when an archive entry would land outside of the destination
var ErrUnsafePath = errors.New("archive entry escapes destination")

var magics = []struct {
	format Format
	magic  []byte
}{
	{FormatZip, []byte("PK\x03\x04")},
	{FormatZip, []byte("PK\x05\x06")},
	{FormatTarGz, []byte{0x1f, 0x8b}},
	{FormatTarBz2, []byte("BZh")},
	{FormatTarXz, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
	{FormatTarZstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{FormatTarLz4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

// Detect the format of an archive from its header. Anything unknown is assumed to be a plain tar.
func Detect(header []byte) Format {
	for _, m := range magics {
		if bytes.HasPrefix(header, m.magic) {
			return m.format
		}
	}
	return FormatTar
}

// Extract unpacks the archive at archivePath into destDir, both on fs.
//
// Existing files are overwritten. Links are not materialized.
func Extract(fs afero.Fs, archivePath, destDir string) (err error) {
	file, err := fs.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	buffered := bufio.NewReader(file)
	header, err := buffered.Peek(8)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading archive header: %w", err)
	}
	if err = fs.MkdirAll(destDir, 0700); err != nil {
		return err
	}

	format := Detect(header)
	if format == FormatZip {
		fi, erz := file.Stat()
		if erz != nil {
			return erz
		}
		return extractZip(fs, file, fi.Size(), destDir)
	}

	rdr, closer, err := decompress(format, buffered)
	if err != nil {
		return fmt.Errorf("%s archive %s: %w", format, archivePath, err)
	}
	if closer != nil {
		defer func() {
			err = multierr.Append(err, closer.Close())
		}()
	}
	if err = extractTar(fs, rdr, destDir); err != nil {
		return fmt.Errorf("%s archive %s: %w", format, archivePath, err)
	}
	return nil
}

func decompress(format Format, rdr io.Reader) (io.Reader, io.Closer, error) {
	switch format {
	case FormatTarGz:
		gz, err := gzip.NewReader(rdr)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz, nil
	case FormatTarBz2:
		return bzip2.NewReader(rdr), nil, nil
	case FormatTarXz:
		xzr, err := xz.NewReader(rdr)
		if err != nil {
			return nil, nil, err
		}
		return xzr, nil, nil
	case FormatTarZstd:
		zr, err := zstd.NewReader(rdr)
		if err != nil {
			return nil, nil, err
		}
		return zr, closerFunc(zr.Close), nil
	case FormatTarLz4:
		return lz4.NewReader(rdr), nil, nil
	default:
		return rdr, nil, nil
	}
}

type closerFunc func()

func (c closerFunc) Close() error {
	c()
	return nil
}

// target resolves the destination of an entry, rejecting entries escaping destDir
func target(destDir, name string) (string, error) {
	slashed := filepath.ToSlash(name)
	for _, part := range strings.Split(slashed, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
		}
	}
	cleaned := path.Clean("/" + slashed)
	return filepath.Join(destDir, filepath.FromSlash(cleaned[1:])), nil
}

func extractTar(fs afero.Fs, rdr io.Reader, destDir string) error {
	tr := tar.NewReader(rdr)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		dest, err := target(destDir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err = fs.MkdirAll(dest, 0700); err != nil {
				return err
			}
		case tar.TypeReg:
			if err = writeFile(fs, dest, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		}
	}
}

func extractZip(fs afero.Fs, rdr io.ReaderAt, size int64, destDir string) error {
	zr, err := zip.NewReader(rdr, size)
	if err != nil {
		return fmt.Errorf("zip archive: %w", err)
	}
	for _, entry := range zr.File {
		dest, err := target(destDir, entry.Name)
		if err != nil {
			return err
		}
		if entry.FileInfo().IsDir() {
			if err = fs.MkdirAll(dest, 0700); err != nil {
				return err
			}
			continue
		}
		if err = extractZipEntry(fs, entry, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractZipEntry(fs afero.Fs, entry *zip.File, dest string) (err error) {
	rdr, err := entry.Open()
	if err != nil {
		return fmt.Errorf("zip entry %q: %w", entry.Name, err)
	}
	defer func() {
		err = multierr.Append(err, rdr.Close())
	}()
	return writeFile(fs, dest, rdr, entry.Mode())
}

func writeFile(fs afero.Fs, dest string, rdr io.Reader, mode os.FileMode) (err error) {
	if err = fs.MkdirAll(filepath.Dir(dest), 0700); err != nil {
		return err
	}
	perm := mode.Perm() | 0600
	file, err := fs.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	_, err = io.Copy(file, rdr)
	return err
}
