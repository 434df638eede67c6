package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/zhuchkkll-blip/nbClass/internal/humanoid"
)

var (
	moveDuration time.Duration
	moveLinear   bool
)

var moveCmd = &cobra.Command{
	Use:   "move <x> <y>",
	Short: "Move the pointer to a screen coordinate.",
	Long: `Move the pointer from its current position to the given screen
coordinate. By default the path is curved and jittered to resemble a human
hand; --linear interpolates straight to the target instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		ctx, cancel := actionContext()
		defer cancel()
		return newMouse().MoveTo(ctx, target, &humanoid.MoveOptions{
			Duration: moveDuration,
			Linear:   moveLinear,
		})
	},
}

func init() {
	moveCmd.Flags().DurationVarP(&moveDuration, "duration", "d", 0, "move duration (0 uses the configured default)")
	moveCmd.Flags().BoolVar(&moveLinear, "linear", false, "use straight-line interpolation instead of a curved path")
	rootCmd.AddCommand(moveCmd)
}
