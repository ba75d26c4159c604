package cache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/oneconcern/corpusy/pkg/storage/localfs"
	"github.com/oneconcern/corpusy/pkg/storage/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// countingStore counts the reads reaching the backend
type countingStore struct {
	storage.Store
	gets int
}

func (c *countingStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	c.gets++
	return c.Store.Get(ctx, key)
}

func setup(t testing.TB) (*countingStore, afero.Fs, storage.Store) {
	t.Helper()
	backend := &countingStore{Store: localfs.New(afero.NewMemMapFs())}
	require.NoError(t, backend.Put(context.Background(), "corpus/VCTK-Corpus.tar.gz", bytes.NewBufferString("remote bytes")))
	cacheFs := afero.NewMemMapFs()
	return backend, cacheFs, New(backend, cacheFs, Logger(zaptest.NewLogger(t)))
}

func read(t testing.TB, store storage.Store, key string) string {
	t.Helper()
	rdr, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	return string(b)
}

func TestGetFillsCache(t *testing.T) {
	backend, cacheFs, store := setup(t)

	assert.Equal(t, "remote bytes", read(t, store, "corpus/VCTK-Corpus.tar.gz"))
	assert.Equal(t, "remote bytes", read(t, store, "corpus/VCTK-Corpus.tar.gz"))
	assert.Equal(t, 1, backend.gets, "second read must be served from cache")

	var files []string
	require.NoError(t, afero.Walk(cacheFs, ".", func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, p)
		}
		return err
	}))
	require.Len(t, files, 1)
	assert.False(t, strings.HasSuffix(files[0], partialSuffix))

	info, err := store.Stat(context.Background(), "corpus/VCTK-Corpus.tar.gz")
	require.NoError(t, err)
	assert.True(t, info.IsFile())
	assert.EqualValues(t, len("remote bytes"), info.Size)
}

func TestGetMissing(t *testing.T) {
	_, _, store := setup(t)

	_, err := store.Get(context.Background(), "corpus/nothing.zip")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotExists))

	has, err := store.Has(context.Background(), "corpus/nothing.zip")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPutAndDelete(t *testing.T) {
	backend, _, store := setup(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "mirror/jvs_ver1.zip", bytes.NewBufferString("uploaded")))
	assert.Equal(t, "uploaded", read(t, backend, "mirror/jvs_ver1.zip"))
	backend.gets = 0

	assert.Equal(t, "uploaded", read(t, store, "mirror/jvs_ver1.zip"))
	assert.Zero(t, backend.gets, "a put object is already cached")

	require.NoError(t, store.Delete(ctx, "mirror/jvs_ver1.zip"))
	has, err := store.Has(ctx, "mirror/jvs_ver1.zip")
	require.NoError(t, err)
	assert.False(t, has)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"corpus/VCTK-Corpus.tar.gz"}, keys)
	assert.Equal(t, "localfs", store.String())
}

func TestEntriesDependOnBackend(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := New(localfs.New(afero.NewMemMapFs()), fs).(*cached)
	b := New(localfs.NewAtomic(afero.NewMemMapFs()), fs).(*cached)

	assert.NotEqual(t, a.entry("same/key"), b.entry("same/key"))
	assert.Equal(t, a.entry("same/key"), a.entry("same/key"))
}
