package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List the items of a corpus",
	Long: `Lists the identities of the items of a corpus, in corpus order.

No contents are needed to list items, except for the AdHoc corpus.`,
	Example: `% corpusy ids --name TEST --limit 2
CORPUS	SUBTYPE	SPEAKER	NAME
TEST  	sub1   	spk1   	uttr1
TEST  	sub1   	spk1   	uttr2`,
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
		table.AddRow("CORPUS", "SUBTYPE", "SPEAKER", "NAME")
		for i, id := range handle.Identities() {
			if corpusyFlags.item.Limit > 0 && i >= corpusyFlags.item.Limit {
				break
			}
			table.AddRow(id.Corpus, id.Subtype, id.Speaker, id.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
	},
}

func init() {
	addCorpusFlags(idsCmd)
	addLimitFlag(idsCmd)
	rootCmd.AddCommand(idsCmd)
}
