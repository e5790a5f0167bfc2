package cmd

import (
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/segment"
	"github.com/spf13/cobra"
)

var (
	wheelFlats    bool
	wheelSegments int
)

func init() {
	wheelCmd.Flags().BoolVar(&wheelFlats, "flats", false, "spell chromatic names with flats")
	wheelCmd.Flags().IntVar(&wheelSegments, "segments", 0, "segment count (default from config)")
	rootCmd.AddCommand(wheelCmd)
}

type wheelOutput struct {
	Circle    []model.CircleSegmentDTO    `json:"circle"`
	Chromatic []model.ChromaticSegmentDTO `json:"chromatic"`
	Layers    []model.LayerPathsDTO       `json:"layers"`
}

var wheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Prints the wheel as JSON",
	Long:  `Prints the circle-of-fifths segments, the chromatic segments and the layered ring paths as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := cfg.Wheel.SegmentCount
		if wheelSegments != 0 {
			count = wheelSegments
		}
		return printJSON(cmd.OutOrStdout(), wheelOutput{
			Circle:    segment.BuildCircleSegments(),
			Chromatic: segment.BuildChromaticSegments(pitch.Flats(wheelFlats)),
			Layers:    segment.BuildWheel(cfg.Wheel.Radii, count),
		})
	},
}
