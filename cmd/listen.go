package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/keywheel/api"
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/midi"
	"github.com/jsphweid/keywheel/segment"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenKey  string
	listenMode string
	listenPort int
)

func init() {
	listenCmd.Flags().StringVar(&listenKey, "key", "C", "center of the key to analyze in")
	listenCmd.Flags().StringVar(&listenMode, "mode", "major", "major, minor or a mode name")
	listenCmd.Flags().IntVar(&listenPort, "port", -1, "MIDI input port (default from config)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long:  `Listens on a MIDI input port and prints the chord held down whenever it changes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := api.ParseContext(listenKey, listenMode)
		if err != nil {
			return err
		}
		port := cfg.Midi.InPort
		if listenPort >= 0 {
			port = listenPort
		}
		return listen(cmd.Context(), cmd.OutOrStdout(), port, ctx)
	},
}

func describeHeld(ctx key.Context, notes []uint8) string {
	if len(notes) == 0 {
		return "-"
	}
	c, ok := chord.Identify(notes)
	if !ok {
		return fmt.Sprintf("? %v", chord.CreateChordKey(notes))
	}
	dto := segment.BuildChord(ctx, c)
	if dto.Analysis == nil {
		return dto.Name
	}
	return fmt.Sprintf("%v (%v)", dto.Name, dto.Analysis.RomanNumeral)
}

func listen(parent context.Context, w io.Writer, port int, keyCtx key.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	defer gomidi.CloseDriver()

	l := midi.NewListener(time.Duration(cfg.Midi.DebounceMs)*time.Millisecond, func(notes []uint8) {
		fmt.Fprintln(w, describeHeld(keyCtx, notes))
	})

	stop, err := midi.Listen(port, l)
	if err != nil {
		return err
	}
	defer stop()
	slog.Info("listening", "port", port, "context", keyCtx.ContextName())

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
	return nil
}
