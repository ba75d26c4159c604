package cmd

import (
	"context"

	"github.com/oneconcern/corpusy/pkg/forward"
	"github.com/spf13/cobra"
)

var forwardCmd = &cobra.Command{
	Use:   "forward SOURCE DESTINATION",
	Short: "Copy an archive between addresses",
	Long: `Copies an archive from an address to another one, e.g. from its origin to an archive root.

Addresses are local paths, gs://bucket/key, s3://bucket/key or http(s) URLs (as a source only).`,
	Example: `% corpusy forward https://data.keithito.com/data/speech/LJSpeech-1.1.tar.bz2 gs://speech-corpora/corpuses/LJ/ver1_1/archive/LJSpeech-1.1.tar.bz2`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger()
		if err != nil {
			wrapFatalln("failed to set log level", err)
			return
		}
		env := newEnv(logger)
		defer func() {
			_ = env.Close()
		}()

		if err := forward.Copy(env.Transport, args[0], args[1], logger)(context.Background()); err != nil {
			wrapFatalln("forward archive", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(forwardCmd)
}
