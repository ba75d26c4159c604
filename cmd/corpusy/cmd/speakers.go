package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/spf13/cobra"
)

var speakersCmd = &cobra.Command{
	Use:   "speakers",
	Short: "List the speakers of a corpus",
	Long: `Lists the speakers of a corpus, with their number of items.

Speakers of combined corpora are merged when they have the same name.`,
	Example: `% corpusy speakers --name "TEST&TESTbeta"
SPEAKER	ITEMS
spk1   	4
spk2   	4
spkb1  	4
spkb2  	4`,
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

		handle, err := loadCorpus(env)
		if err != nil {
			wrapFatalln("load corpus", err)
			return
		}

		table := uitable.New()
		table.AddRow("SPEAKER", "ITEMS")
		for _, group := range corpus.IdentitiesPerSpeaker(handle) {
			table.AddRow(group[0].Speaker, len(group))
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
	},
}

func init() {
	addCorpusFlags(speakersCmd)
	rootCmd.AddCommand(speakersCmd)
}
