package extract

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var corpusFiles = []struct {
	Name    string
	Content string
}{
	{Name: "jsut_ver1.1/basic5000/wav/BASIC5000_0001.wav", Content: "RIFF one"},
	{Name: "jsut_ver1.1/basic5000/wav/BASIC5000_0002.wav", Content: "RIFF two"},
	{Name: "jsut_ver1.1/README.txt", Content: "readme"},
}

func tarball(t testing.TB, entries ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "jsut_ver1.1/", Typeflag: tar.TypeDir, Mode: 0755}))
	for _, f := range corpusFiles {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: f.Name, Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(f.Content))}))
		_, err := tw.Write([]byte(f.Content))
		require.NoError(t, err)
	}
	for _, name := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0644, Size: 1}))
		_, err := tw.Write([]byte("x"))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func compressed(t testing.TB, format Format, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch format {
	case FormatTar:
		return raw
	case FormatTarGz:
		w = gzip.NewWriter(&buf)
	case FormatTarXz:
		xw, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		w = xw
	case FormatTarZstd:
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = zw
	case FormatTarLz4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("no writer for %s", format)
	}
	_, err := w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zipball(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("jsut_ver1.1/")
	require.NoError(t, err)
	for _, f := range corpusFiles {
		w, err := zw.Create(f.Name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.Content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func assertExtracted(t testing.TB, fs afero.Fs, destDir string) {
	t.Helper()
	for _, f := range corpusFiles {
		b, err := afero.ReadFile(fs, destDir+"/"+f.Name)
		require.NoError(t, err, f.Name)
		assert.Equal(t, f.Content, string(b))
	}
}

func TestExtractFormats(t *testing.T) {
	for _, toPin := range []Format{FormatTar, FormatTarGz, FormatTarXz, FormatTarZstd, FormatTarLz4, FormatZip} {
		format := toPin
		t.Run(string(format), func(t *testing.T) {
			var archive []byte
			if format == FormatZip {
				archive = zipball(t)
			} else {
				archive = compressed(t, format, tarball(t))
			}
			assert.Equal(t, format, Detect(archive))

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "staging/archive.tmp", archive, 0600))
			require.NoError(t, Extract(fs, "staging/archive.tmp", "tmp/corpuses/JSUT/ver1_1/contents"))
			assertExtracted(t, fs, "tmp/corpuses/JSUT/ver1_1/contents")
		})
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FormatTarBz2, Detect([]byte("BZh91AY&SY")))
	assert.Equal(t, FormatZip, Detect([]byte("PK\x05\x06")))
	assert.Equal(t, FormatTar, Detect(nil))
}

func TestExtractOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "archive.tar", tarball(t), 0600))
	require.NoError(t, afero.WriteFile(fs, "out/jsut_ver1.1/README.txt", []byte("stale and much longer"), 0600))

	require.NoError(t, Extract(fs, "archive.tar", "out"))
	assertExtracted(t, fs, "out")
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "evil.tar", tarball(t, "../../etc/passwd"), 0600))

	err := Extract(fs, "evil.tar", "out")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsafePath))

	exists, err := afero.Exists(fs, "etc/passwd")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExtractAbsoluteEntriesStayInside(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "abs.tar", tarball(t, "/rooted/file"), 0600))

	require.NoError(t, Extract(fs, "abs.tar", "out"))
	exists, err := afero.Exists(fs, "out/rooted/file")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExtractCorrupted(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "broken.tar.gz", []byte{0x1f, 0x8b, 0x00}, 0600))
	assert.Error(t, Extract(fs, "broken.tar.gz", "out"))

	assert.Error(t, Extract(fs, "missing.zip", "out"))
}

func TestPackRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, f := range corpusFiles {
		require.NoError(t, afero.WriteFile(fs, "contents/"+f.Name, []byte(f.Content), 0600))
	}

	var buf bytes.Buffer
	require.NoError(t, Pack(fs, "contents", &buf))
	assert.Equal(t, FormatZip, Detect(buf.Bytes()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, entry := range zr.File {
		names = append(names, entry.Name)
	}
	assert.Contains(t, names, "jsut_ver1.1/basic5000/wav/BASIC5000_0001.wav")
	assert.Contains(t, names, "jsut_ver1.1/")

	require.NoError(t, afero.WriteFile(fs, "packed.zip", buf.Bytes(), 0600))
	require.NoError(t, Extract(fs, "packed.zip", "restored"))
	assertExtracted(t, fs, "restored")
}
