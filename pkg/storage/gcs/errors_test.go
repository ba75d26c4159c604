package gcs

import (
	"errors"
	"fmt"
	"testing"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/oneconcern/corpusy/pkg/storage/status"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestToSentinelErrors(t *testing.T) {
	assert.NoError(t, toSentinelErrors(nil))

	for _, toPin := range []struct {
		Title    string
		Err      error
		Expected error
	}{
		{Title: "missing object", Err: gcsStorage.ErrObjectNotExist, Expected: status.ErrNotExists},
		{Title: "missing bucket", Err: fmt.Errorf("attrs: %w", gcsStorage.ErrBucketNotExist), Expected: status.ErrNotExists},
		{Title: "invalid bucket", Err: &googleapi.Error{Code: 400, Body: "bucket is not valid"}, Expected: status.ErrInvalidResource},
		{Title: "bad request", Err: &googleapi.Error{Code: 400}, Expected: status.ErrStorageAPI},
		{Title: "unauthorized", Err: &googleapi.Error{Code: 401}, Expected: status.ErrUnauthorized},
		{Title: "forbidden", Err: &googleapi.Error{Code: 403}, Expected: status.ErrForbidden},
		{Title: "not found", Err: &googleapi.Error{Code: 404}, Expected: status.ErrNotFound},
		{Title: "server error", Err: &googleapi.Error{Code: 503}, Expected: status.ErrStorageAPI},
	} {
		fixture := toPin
		t.Run(fixture.Title, func(t *testing.T) {
			err := toSentinelErrors(fixture.Err)
			assert.True(t, errors.Is(err, fixture.Expected), "got %v", err)
		})
	}

	plain := errors.New("plain")
	assert.Equal(t, plain, toSentinelErrors(plain))
}

func TestFolder(t *testing.T) {
	assert.Equal(t, "corpuses/JVS/", folder("corpuses/JVS"))
	assert.Equal(t, "corpuses/JVS/", folder("corpuses/JVS/"))
}
