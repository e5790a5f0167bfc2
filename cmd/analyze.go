package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jsphweid/keywheel/api"
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/midi"
	"github.com/jsphweid/keywheel/segment"
	"github.com/spf13/cobra"
)

var (
	analyzeKey  string
	analyzeMode string
	analyzeFrom uint64
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeKey, "key", "C", "center of the key to analyze in")
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "major", "major, minor or a mode name")
	analyzeCmd.Flags().Uint64Var(&analyzeFrom, "from", 0, "skip everything before this tick")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Names the chords in a MIDI file",
	Long:  `Reads a standard MIDI file, names every chord that sounds in it and analyzes it in the given key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := api.ParseContext(analyzeKey, analyzeMode)
		if err != nil {
			return err
		}
		return analyze(cmd.OutOrStdout(), args[0], ctx, analyzeFrom)
	},
}

func analyze(w io.Writer, path string, ctx key.Context, fromTicks uint64) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	if fromTicks > 0 {
		if s, err = midi.Excerpt(s, fromTicks, 0); err != nil {
			return err
		}
	}
	soundings, err := chord.GetSoundings(s)
	if err != nil {
		return err
	}
	slog.Debug("read midi file", "path", path, "soundings", len(soundings))

	var last string
	for _, sounding := range soundings {
		c, ok := chord.Identify(sounding.Notes)
		if !ok {
			continue
		}
		dto := segment.BuildChord(ctx, c)
		if dto.Name == last {
			continue
		}
		last = dto.Name

		numeral := "-"
		if dto.Analysis != nil {
			numeral = dto.Analysis.RomanNumeral
		}
		if _, err := fmt.Fprintf(w, "%10d µs  %-8s %s\n", sounding.Offset, dto.Name, numeral); err != nil {
			return err
		}
	}
	return nil
}
