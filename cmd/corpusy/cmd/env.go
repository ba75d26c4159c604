package cmd

import (
	"github.com/oneconcern/corpusy/pkg/acquire"
	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/dlogger"
	"github.com/oneconcern/corpusy/pkg/loader"
	"github.com/oneconcern/corpusy/pkg/presets"
	"github.com/oneconcern/corpusy/pkg/transport"
	opentracing "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func newLogger() (*zap.Logger, error) {
	return dlogger.GetConsoleLogger(corpusyFlags.root.logLevel)
}

// newEnv builds the environment presets are loaded into
func newEnv(logger *zap.Logger, aopts ...acquire.Option) *presets.Env {
	if corpusyFlags.fetch.ChunkSize > 0 {
		aopts = append(aopts, acquire.ChunkSize(int(corpusyFlags.fetch.ChunkSize)))
	}
	return presets.NewEnv(logger,
		presets.WithLocalRoot(corpusyFlags.corpus.LocalRoot),
		presets.WithTransportOptions(
			transport.Credential(corpusyFlags.root.credFile),
			transport.Tracer(opentracing.GlobalTracer()),
		),
		presets.WithAcquireOptions(aopts...),
	)
}

func loadCorpus(env *presets.Env) (corpus.Handle, error) {
	return loader.Load(presets.Default(),
		loader.Name(corpusyFlags.corpus.Name),
		loader.Root(corpusyFlags.corpus.Root),
		loader.Download(corpusyFlags.corpus.Download),
		loader.WithEnv(env),
	)
}
