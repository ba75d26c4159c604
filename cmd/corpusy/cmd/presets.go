package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/oneconcern/corpusy/pkg/presets"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the supported corpus presets",
	Long: `Lists the corpus presets, which may be used as --name.

Presets may be combined with "&", and suffixed with a variant, e.g. "VCTK==ver0_92".`,
	Run: func(cmd *cobra.Command, args []string) {
		name := color.New(color.FgGreen, color.Bold)
		for _, preset := range presets.Default().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name.Sprint(preset))
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
