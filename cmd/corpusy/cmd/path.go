package cmd

import (
	"fmt"

	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path CORPUS SUBTYPE SPEAKER NAME",
	Short: "Print the local path of an item",
	Long: `Prints the local path of an item, as listed by "corpusy ids".

The item is not required to be present: use "corpusy fetch" to get the contents first.`,
	Example: `% corpusy path --name JSUT JSUT basic5000 default BASIC5000_0001
tmp/corpuses/JSUT/ver1_1/contents/jsut_ver1.1/basic5000/wav/BASIC5000_0001.wav`,
	Args: cobra.ExactArgs(4),
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

		p, err := handle.ItemPath(corpus.ItemID{Corpus: args[0], Subtype: args[1], Speaker: args[2], Name: args[3]})
		if err != nil {
			wrapFatalln("locate item", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
	},
}

func init() {
	addCorpusFlags(pathCmd)
	rootCmd.AddCommand(pathCmd)
}
