package cmd

import (
	"github.com/jsphweid/keywheel/api"
	"github.com/jsphweid/keywheel/segment"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <center> [mode]",
	Short: "Prints a key or mode",
	Long: `Prints the scale, diatonic triads and sevenths of a key or mode, e.g.
  keywheel key Eb
  keywheel key F# minor
  keywheel key D dorian`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := ""
		if len(args) == 2 {
			mode = args[1]
		}
		ctx, err := api.ParseContext(args[0], mode)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), segment.BuildContext(ctx))
	},
}
