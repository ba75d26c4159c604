package sthree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/oneconcern/corpusy/pkg/storage"
	"github.com/oneconcern/corpusy/pkg/storage/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "corpusy-test"

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "deep/seventeentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "fifteentons")
	require.NoError(t, err)
	require.False(t, has)

	has, err = bs.Has(context.Background(), "deep")
	require.NoError(t, err)
	require.False(t, has)
}

func TestStat(t *testing.T) {
	bs := setupStore(t)

	info, err := bs.Stat(context.Background(), "sixteentons")
	require.NoError(t, err)
	assert.True(t, info.IsFile())
	assert.EqualValues(t, len("this is the text"), info.Size)

	info, err = bs.Stat(context.Background(), "deep")
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.True(t, info.IsDir)

	info, err = bs.Stat(context.Background(), "fifteentons")
	require.NoError(t, err)
	assert.False(t, info.Exists)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "fifteentons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotExists))
}

func TestPut(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Put(context.Background(), "mirror/jvs_ver1.zip", bytes.NewBufferString("zipped voices")))

	rdr, err := bs.Get(context.Background(), "mirror/jvs_ver1.zip")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "zipped voices", string(b))
}

func TestKeysAndDelete(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"deep/seventeentons", "sixteentons"}, keys)

	require.NoError(t, bs.Delete(context.Background(), "deep/seventeentons"))
	require.NoError(t, bs.Delete(context.Background(), "never-there"))

	keys, err = bs.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"sixteentons"}, keys)
}

func TestNew(t *testing.T) {
	_, err := New(Bucket(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidResource))

	bs := setupStore(t)
	assert.Equal(t, "s3://"+testBucket, bs.String())
}

func TestToSentinelErrors(t *testing.T) {
	assert.NoError(t, toSentinelErrors(nil))

	for _, toPin := range []struct {
		Title    string
		Code     string
		Status   int
		Expected error
	}{
		{Title: "invalid bucket", Code: "InvalidBucketName", Status: 400, Expected: status.ErrInvalidResource},
		{Title: "bad request", Code: "BadDigest", Status: 400, Expected: status.ErrStorageAPI},
		{Title: "unauthorized", Code: "Unauthorized", Status: 401, Expected: status.ErrUnauthorized},
		{Title: "forbidden", Code: "AccessDenied", Status: 403, Expected: status.ErrForbidden},
		{Title: "no such key", Code: "NoSuchKey", Status: 404, Expected: status.ErrNotExists},
		{Title: "head not found", Code: "NotFound", Status: 404, Expected: status.ErrNotExists},
		{Title: "other not found", Code: "NoSuchUpload", Status: 404, Expected: status.ErrNotFound},
		{Title: "server error", Code: "InternalError", Status: 500, Expected: status.ErrStorageAPI},
	} {
		fixture := toPin
		t.Run(fixture.Title, func(t *testing.T) {
			awsErr := awserr.NewRequestFailure(awserr.New(fixture.Code, "test", nil), fixture.Status, "req-1")
			err := toSentinelErrors(fmt.Errorf("wrapped: %w", awsErr))
			assert.True(t, errors.Is(err, fixture.Expected), "got %v", err)
		})
	}

	plain := errors.New("plain")
	assert.Equal(t, plain, toSentinelErrors(plain))
}

// fakeS3 serves the subset of the S3 REST API used by the store, with path-style addressing.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/"+testBucket), "/")
	if key == "" && r.Method == http.MethodGet {
		f.list(w, r.URL.Query().Get("prefix"))
		return
	}

	switch r.Method {
	case http.MethodHead:
		content, ok := f.objects[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		content, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		_, _ = w.Write(content)
	case http.MethodPut:
		content, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.objects[key] = content
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) list(w http.ResponseWriter, prefix string) {
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var contents strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&contents, "<Contents><Key>%s</Key><Size>%d</Size></Contents>", k, len(f.objects[k]))
	}
	w.Header().Set("Content-Type", "application/xml")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>`+
		`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`+
		`<Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>%d</MaxKeys><IsTruncated>false</IsTruncated>%s`+
		`</ListBucketResult>`, testBucket, prefix, len(keys), PageSize, contents.String())
}

func setupStore(t testing.TB) storage.Store {
	t.Helper()

	fake := &fakeS3{objects: map[string][]byte{
		"sixteentons":        []byte("this is the text"),
		"deep/seventeentons": []byte("this is the text for another thing"),
	}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	bs, err := New(Bucket(testBucket), AWSConfig(&aws.Config{
		Credentials:      credentials.NewStaticCredentials("access-key", "secret-key-thing", ""),
		Endpoint:         aws.String(server.URL),
		Region:           aws.String("us-west-2"),
		DisableSSL:       aws.Bool(true),
		S3ForcePathStyle: aws.Bool(true),
		MaxRetries:       aws.Int(0),
	}))
	require.NoError(t, err)
	return bs
}
