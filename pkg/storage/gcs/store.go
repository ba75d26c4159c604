// Copyright © 2018 One Concern

package gcs

import (
	"context"
	"errors"
	"io"
	"strings"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/oneconcern/corpusy/pkg/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type gcs struct {
	client     *gcsStorage.Client
	bucket     string
	clientOpts []option.ClientOption
	l          *zap.Logger
}

// New builds a store on a GCS bucket.
//
// When credentialFile is empty, application default credentials are used
// (e.g. GOOGLE_APPLICATION_CREDENTIALS).
func New(ctx context.Context, bucket string, credentialFile string, opts ...Option) (storage.Store, error) {
	googleStore := &gcs{
		bucket: bucket,
		l:      zap.NewNop(),
	}
	for _, apply := range opts {
		apply(googleStore)
	}
	clientOpts := []option.ClientOption{option.WithScopes(gcsStorage.ScopeReadWrite)}
	if credentialFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialFile))
	}
	clientOpts = append(clientOpts, googleStore.clientOpts...)

	var err error
	googleStore.client, err = gcsStorage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return googleStore, nil
}

func (g *gcs) String() string {
	return "gcs://" + g.bucket
}

func (g *gcs) Has(ctx context.Context, objectName string) (bool, error) {
	info, err := g.Stat(ctx, objectName)
	if err != nil {
		return false, err
	}
	return info.IsFile(), nil
}

func (g *gcs) Stat(ctx context.Context, objectName string) (storage.Info, error) {
	attrs, err := g.client.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err == nil {
		return storage.Info{Exists: true, Size: attrs.Size}, nil
	}
	if !errors.Is(err, gcsStorage.ErrObjectNotExist) {
		return storage.Info{}, toSentinelErrors(err)
	}

	// no such object: this may still be a "folder"
	it := g.client.Bucket(g.bucket).Objects(ctx, &gcsStorage.Query{Prefix: folder(objectName)})
	_, err = it.Next()
	switch {
	case errors.Is(err, iterator.Done):
		return storage.Info{}, nil
	case err != nil:
		return storage.Info{}, toSentinelErrors(err)
	default:
		return storage.Info{Exists: true, IsDir: true}, nil
	}
}

func (g *gcs) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	g.l.Debug("gcs get", zap.String("bucket", g.bucket), zap.String("object", objectName))
	objectReader, err := g.client.Bucket(g.bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return objectReader, nil
}

func (g *gcs) Put(ctx context.Context, objectName string, reader io.Reader) error {
	g.l.Debug("gcs put", zap.String("bucket", g.bucket), zap.String("object", objectName))
	writer := g.client.Bucket(g.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(writer, reader); err != nil {
		_ = writer.Close()
		return toSentinelErrors(err)
	}
	return toSentinelErrors(writer.Close())
}

func (g *gcs) Delete(ctx context.Context, objectName string) error {
	err := g.client.Bucket(g.bucket).Object(objectName).Delete(ctx)
	if errors.Is(err, gcsStorage.ErrObjectNotExist) {
		return nil
	}
	return toSentinelErrors(err)
}

func (g *gcs) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	objectsIterator := g.client.Bucket(g.bucket).Objects(ctx, nil)
	for {
		attrs, err := objectsIterator.Next()
		if errors.Is(err, iterator.Done) {
			return keys, nil
		}
		if err != nil {
			return nil, toSentinelErrors(err)
		}
		keys = append(keys, attrs.Name)
	}
}

func folder(key string) string {
	return strings.TrimSuffix(key, "/") + "/"
}
