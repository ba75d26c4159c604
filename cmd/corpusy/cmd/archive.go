package cmd

import (
	"context"

	"github.com/oneconcern/corpusy/pkg/presets"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a contents directory",
	Long: `Zips a contents directory and writes it to some address.

This is the way to share a corpus prepared locally, such as an AdHoc one.`,
	Example: `% corpusy archive --contents tmp/corpuses/AdHoc/default/contents --destination gs://speech-corpora/corpuses/AdHoc/default/archive/not_exists.zip`,
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

		err = presets.SaveArchive(context.Background(), env.Transport, env.Fs, corpusyFlags.archive.Contents, corpusyFlags.archive.Destination)
		if err != nil {
			wrapFatalln("archive contents", err)
			return
		}
		logger.Info("archive saved", zap.String("destination", corpusyFlags.archive.Destination))
	},
}

func init() {
	requireFlags(archiveCmd,
		addContentsFlag(archiveCmd),
		addDestinationFlag(archiveCmd),
	)
	rootCmd.AddCommand(archiveCmd)
}
