package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

var (
	dragDuration time.Duration
	dragButton   string
)

var dragCmd = &cobra.Command{
	Use:   "drag <x1> <y1> <x2> <y2>",
	Short: "Press at one coordinate and release at another.",
	Long: `Move to the first coordinate, press the button, hold briefly, move
to the second coordinate along a human-like path and release.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		to, err := parsePoint(args[2], args[3])
		if err != nil {
			return err
		}
		ctx, cancel := actionContext()
		defer cancel()
		return newMouse().Drag(ctx, from, to, dragDuration, schemas.ParseMouseButton(dragButton))
	},
}

func init() {
	dragCmd.Flags().DurationVarP(&dragDuration, "duration", "d", 500*time.Millisecond, "duration of the dragging move")
	dragCmd.Flags().StringVarP(&dragButton, "button", "b", "left", "button to drag with (left, right, middle)")
	rootCmd.AddCommand(dragCmd)
}
