package cmd

import (
	"context"

	"github.com/oneconcern/corpusy/pkg/acquire"
	"github.com/oneconcern/corpusy/pkg/address"
	"github.com/oneconcern/corpusy/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Get the contents of a corpus",
	Long: `Makes the contents of a corpus available locally.

Contents already extracted are left as is. Otherwise the archive is read from the archive root,
after being forwarded from its origin when --download is set.`,
	Example: `% corpusy fetch --name JVS --root gs://speech-corpora --download
% corpusy fetch --name "JSUT&VCTK==ver0_92" --metrics-file /var/lib/node_exporter/corpusy.prom`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger()
		if err != nil {
			wrapFatalln("failed to set log level", err)
			return
		}

		registry := prometheus.NewRegistry()
		m, err := metrics.NewAcquisition(registry)
		if err != nil {
			wrapFatalln("register metrics", err)
			return
		}
		env := newEnv(logger, acquire.Metrics(m))
		defer func() {
			_ = env.Close()
		}()

		handle, err := loadCorpus(env)
		if err != nil {
			wrapFatalln("load corpus", err)
			return
		}

		err = handle.GetContents(context.Background())
		if file := corpusyFlags.fetch.MetricsFile; file != "" {
			if werr := prometheus.WriteToTextfile(file, registry); werr != nil {
				logger.Warn("could not write metrics", zap.String("file", file), zap.Error(werr))
			}
		}
		if err != nil {
			wrapFatalln("get contents of "+handle.Corpus(), err)
			return
		}
		fields := []zap.Field{zap.String("corpus", handle.Corpus())}
		if located, ok := handle.(interface{ Location() address.Location }); ok {
			fields = append(fields, zap.String("contents", located.Location().Contents))
		}
		logger.Info("contents ready", fields...)
	},
}

func init() {
	addCorpusFlags(fetchCmd)
	addMetricsFileFlag(fetchCmd)
	addChunkSizeFlag(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}
