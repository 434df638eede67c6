package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll <clicks>",
	Short: "Scroll the wheel; positive clicks scroll up, negative down.",
	Long: `Scroll the wheel by a number of detent clicks. Positive values
scroll up, negative values down. Separate negative counts from the flags
with "--", e.g. "nbclass scroll -- -2".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clicks, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid click count %q: %w", args[0], err)
		}
		ctx, cancel := actionContext()
		defer cancel()
		return newMouse().Scroll(ctx, clicks)
	},
}

func init() {
	rootCmd.AddCommand(scrollCmd)
}
