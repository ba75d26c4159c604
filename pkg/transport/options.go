package transport

import (
	"github.com/aws/aws-sdk-go/aws"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option for the transport
type Option func(*Transport)

// Fs sets the local file system. Defaults to the OS file system.
func Fs(fs afero.Fs) Option {
	return func(t *Transport) {
		if fs != nil {
			t.fs = fs
		}
	}
}

// CacheFs sets the file system remote objects are staged on.
//
// Defaults to a temporary directory on the OS file system, removed by Close.
func CacheFs(fs afero.Fs) Option {
	return func(t *Transport) {
		t.cacheFs = fs
	}
}

// Logger for the transport and its stores
func Logger(l *zap.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.l = l
		}
	}
}

// Tracer for the instrumented stores
func Tracer(tr opentracing.Tracer) Option {
	return func(t *Transport) {
		t.tracer = tr
	}
}

// Credential is a google credential file, used for gs:// addresses
func Credential(file string) Option {
	return func(t *Transport) {
		t.credential = file
	}
}

// AWSConfig is used for s3:// addresses
func AWSConfig(cfg *aws.Config) Option {
	return func(t *Transport) {
		t.awsConfig = cfg
	}
}

// WithStoreFactory registers a store factory for some scheme, replacing the default one
func WithStoreFactory(scheme string, factory StoreFactory) Option {
	return func(t *Transport) {
		t.factories[scheme] = factory
	}
}
