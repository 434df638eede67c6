package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

var (
	clickButton  string
	dclickButton string
)

// pointArgs accepts either no coordinates (act in place) or an x y pair.
func pointArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected no arguments or an <x> <y> pair, got %d", len(args))
	}
	return nil
}

// optionalPoint parses an optional x y argument pair.
func optionalPoint(args []string) (*schemas.Point, error) {
	if len(args) == 0 {
		return nil, nil
	}
	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var clickCmd = &cobra.Command{
	Use:   "click [x y]",
	Short: "Click at a coordinate, or in place when none is given.",
	Args:  pointArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := optionalPoint(args)
		if err != nil {
			return err
		}
		ctx, cancel := actionContext()
		defer cancel()
		return newMouse().Click(ctx, target, schemas.ParseMouseButton(clickButton))
	},
}

var dclickCmd = &cobra.Command{
	Use:   "dclick [x y]",
	Short: "Double-click at a coordinate, or in place when none is given.",
	Args:  pointArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := optionalPoint(args)
		if err != nil {
			return err
		}
		ctx, cancel := actionContext()
		defer cancel()
		return newMouse().DoubleClick(ctx, target, schemas.ParseMouseButton(dclickButton))
	},
}

func init() {
	clickCmd.Flags().StringVarP(&clickButton, "button", "b", "left", "button to click (left, right, middle)")
	dclickCmd.Flags().StringVarP(&dclickButton, "button", "b", "left", "button to click (left, right, middle)")
	rootCmd.AddCommand(clickCmd)
	rootCmd.AddCommand(dclickCmd)
}
