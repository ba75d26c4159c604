package presets

import (
	"context"
	"io"

	"github.com/oneconcern/corpusy/pkg/acquire"
	"github.com/oneconcern/corpusy/pkg/forward"
	"github.com/oneconcern/corpusy/pkg/transport"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Acquirer makes the contents of an archive available locally
type Acquirer interface {
	GetContents(ctx context.Context, archive, contents string, download bool, fwd forward.Forwarder) error
}

// Transport moves archives between addresses
type Transport interface {
	forward.Copier
	forward.Putter
}

// Env holds what corpus handles need to reach their archives and contents
type Env struct {
	Acquirer  Acquirer
	Transport Transport
	Fs        afero.Fs
	// LocalRoot is the root of extracted contents. Defaults to address.DefaultLocalRoot.
	LocalRoot string
	Logger    *zap.Logger
	// GDriveOptions are passed to the forwarders of corpora shared on Google Drive
	GDriveOptions []forward.GDriveOption

	closer io.Closer
}

// EnvOption configures the default environment
type EnvOption func(*envSettings)

type envSettings struct {
	fs        afero.Fs
	localRoot string
	topts     []transport.Option
	aopts     []acquire.Option
	gopts     []forward.GDriveOption
}

// WithFs sets the file system of contents. Defaults to the OS file system.
func WithFs(fs afero.Fs) EnvOption {
	return func(s *envSettings) {
		s.fs = fs
	}
}

// WithLocalRoot sets the root of extracted contents
func WithLocalRoot(root string) EnvOption {
	return func(s *envSettings) {
		s.localRoot = root
	}
}

// WithTransportOptions configures the transport, e.g. credentials for remote stores
func WithTransportOptions(opts ...transport.Option) EnvOption {
	return func(s *envSettings) {
		s.topts = append(s.topts, opts...)
	}
}

// WithAcquireOptions configures the acquirer, e.g. its chunk size or metrics
func WithAcquireOptions(opts ...acquire.Option) EnvOption {
	return func(s *envSettings) {
		s.aopts = append(s.aopts, opts...)
	}
}

// WithGDriveOptions configures the Google Drive forwarders
func WithGDriveOptions(opts ...forward.GDriveOption) EnvOption {
	return func(s *envSettings) {
		s.gopts = append(s.gopts, opts...)
	}
}

// NewEnv builds an environment with a default transport and acquirer
func NewEnv(logger *zap.Logger, opts ...EnvOption) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := envSettings{fs: afero.NewOsFs()}
	for _, apply := range opts {
		apply(&s)
	}
	tr := transport.New(append([]transport.Option{transport.Fs(s.fs), transport.Logger(logger)}, s.topts...)...)
	return &Env{
		Acquirer:      acquire.New(append([]acquire.Option{acquire.Fs(s.fs), acquire.Transport(tr), acquire.Logger(logger)}, s.aopts...)...),
		Transport:     tr,
		Fs:            s.fs,
		LocalRoot:     s.localRoot,
		Logger:        logger,
		GDriveOptions: s.gopts,
		closer:        tr,
	}
}

// Close releases the resources held by the environment
func (e *Env) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Env) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}
