package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/keywheel/api"
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/midi"
	"github.com/jsphweid/keywheel/util"
	"github.com/spf13/cobra"
)

var (
	exportDegrees  []int
	exportSevenths bool
	exportOut      string
)

func init() {
	exportCmd.Flags().IntSliceVar(&exportDegrees, "degrees", nil, "scale degrees to play, e.g. 1,6,4,5 (default all seven)")
	exportCmd.Flags().BoolVar(&exportSevenths, "sevenths", false, "play seventh chords instead of triads")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <export.dir>/<uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <center> [mode]",
	Short: "Writes diatonic chords to a MIDI file",
	Long:  `Writes the diatonic chords of a key or mode, or a progression of its degrees, as a standard MIDI file.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := ""
		if len(args) == 2 {
			mode = args[1]
		}
		ctx, err := api.ParseContext(args[0], mode)
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			if err := util.EnsureDir(cfg.Export.Dir); err != nil {
				return err
			}
			path = filepath.Join(cfg.Export.Dir, uuid.New().String()+".mid")
		}

		opts := midi.DefaultExportOptions()
		opts.Tempo = cfg.Export.Tempo
		opts.Velocity = uint8(cfg.Export.Velocity)

		if err := midi.WriteProgression(path, ctx.ContextName(), exportChords(ctx), opts); err != nil {
			return err
		}
		slog.Info("exported", "path", path, "context", ctx.ContextName())
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func exportChords(ctx key.Context) []chord.Chord {
	if len(exportDegrees) == 0 {
		if exportSevenths {
			return ctx.DiatonicSevenths()
		}
		return ctx.DiatonicChords()
	}
	if !exportSevenths {
		return key.Progression(ctx, exportDegrees)
	}
	sevenths := ctx.DiatonicSevenths()
	res := make([]chord.Chord, 0, len(exportDegrees))
	for _, d := range exportDegrees {
		res = append(res, sevenths[util.Mod(d-1, len(sevenths))])
	}
	return res
}
