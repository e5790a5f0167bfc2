package cmd

import (
	"encoding/json"
	"io"

	"github.com/jsphweid/keywheel/config"
	"github.com/jsphweid/keywheel/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "keywheel",
	Short: "Circle of fifths, keys, modes and chords",
	Long: `keywheel models keys, modes, scales and chords on the circle of fifths
and draws the circular wheel they are browsed on.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Setup(cfg.Server.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./keywheel.yaml)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
