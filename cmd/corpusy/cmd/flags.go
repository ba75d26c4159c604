// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	units "github.com/docker/go-units"
	"github.com/oneconcern/corpusy/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// byteSize is a flag value accepting human readable sizes, such as 100MB
type byteSize int64

var _ pflag.Value = (*byteSize)(nil)

func (b byteSize) String() string {
	if b == 0 {
		return ""
	}
	return units.HumanSize(float64(b))
}

func (b *byteSize) Set(value string) error {
	size, err := units.FromHumanSize(value)
	if err != nil {
		return err
	}
	*b = byteSize(size)
	return nil
}

func (b *byteSize) Type() string {
	return "size"
}

type flagsT struct {
	corpus struct {
		Name      string
		Root      string
		LocalRoot string
		Download  bool
	}
	item struct {
		Limit int
	}
	fetch struct {
		MetricsFile string
		ChunkSize   byteSize
	}
	archive struct {
		Contents    string
		Destination string
	}
	root struct {
		credFile string
		logLevel string
	}
}

var corpusyFlags = flagsT{}

func addCorpusNameFlag(cmd *cobra.Command) string {
	name := "name"
	cmd.Flags().StringVar(&corpusyFlags.corpus.Name, name, "", `The corpus preset, e.g. "JVS", "VCTK==ver0_92" or "JVS&VCTK"`)
	return name
}

func addCorpusRootFlag(cmd *cobra.Command) string {
	root := "root"
	cmd.Flags().StringVar(&corpusyFlags.corpus.Root, root, "",
		"The archive root: a local directory, gs://bucket, s3://bucket or an http(s) URL. Defaults to the local root")
	return root
}

func addLocalRootFlag(cmd *cobra.Command) string {
	localRoot := "local-root"
	cmd.Flags().StringVar(&corpusyFlags.corpus.LocalRoot, localRoot, "", "The local directory contents are extracted under. Defaults to ./tmp")
	return localRoot
}

func addDownloadFlag(cmd *cobra.Command) string {
	download := "download"
	cmd.Flags().BoolVar(&corpusyFlags.corpus.Download, download, false, "Forward missing archives from their origin")
	return download
}

func addLimitFlag(cmd *cobra.Command) string {
	limit := "limit"
	cmd.Flags().IntVar(&corpusyFlags.item.Limit, limit, 0, "Show at most this many items. 0 shows all")
	return limit
}

func addMetricsFileFlag(cmd *cobra.Command) string {
	metricsFile := "metrics-file"
	cmd.Flags().StringVar(&corpusyFlags.fetch.MetricsFile, metricsFile, "",
		"Write acquisition metrics to this file, in the prometheus text format (node exporter textfile collector)")
	return metricsFile
}

func addChunkSizeFlag(cmd *cobra.Command) string {
	chunkSize := "chunk-size"
	cmd.Flags().Var(&corpusyFlags.fetch.ChunkSize, chunkSize, "Read archives in chunks of this size, e.g. 10MB. Defaults to 100MB")
	return chunkSize
}

func addContentsFlag(cmd *cobra.Command) string {
	contents := "contents"
	cmd.Flags().StringVar(&corpusyFlags.archive.Contents, contents, "", "The contents directory to archive")
	return contents
}

func addDestinationFlag(cmd *cobra.Command) string {
	destination := "destination"
	cmd.Flags().StringVar(&corpusyFlags.archive.Destination, destination, "", "The address the archive is written to")
	return destination
}

func addLogLevel(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&corpusyFlags.root.logLevel, logLevel, dlogger.LogLevelInfo, "The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return logLevel
}

func addCredentialFile(cmd *cobra.Command) string {
	credential := "credential"
	cmd.PersistentFlags().StringVar(&corpusyFlags.root.credFile, credential, "", "The path to the google cloud credential file, for gs:// roots")
	return credential
}

func addCorpusFlags(cmd *cobra.Command) {
	requireFlags(cmd, addCorpusNameFlag(cmd))
	addCorpusRootFlag(cmd)
	addLocalRootFlag(cmd)
	addDownloadFlag(cmd)
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}
