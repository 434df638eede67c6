package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
	"github.com/zhuchkkll-blip/nbClass/internal/config"
	"github.com/zhuchkkll-blip/nbClass/internal/humanoid"
	"github.com/zhuchkkll-blip/nbClass/internal/input"
	"github.com/zhuchkkll-blip/nbClass/internal/observability"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "nbclass",
	Short:   "nbclass synthesizes human-like mouse input.",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Runs before any command, setting up config and logging.
		if err := initializeConfig(); err != nil {
			return err
		}

		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "nbclass"})
			return err
		}
		cfg = loaded

		observability.InitializeLogger(cfg.Logger)
		observability.GetLogger().Debug("starting nbclass", zap.String("version", Version))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			logger.Error("command execution failed", zap.Error(err))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// initializeConfig reads in the config file and environment variables if set.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NBCLASS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and env vars.
	}
	return nil
}

// newMouse builds a controller wired to the platform sink.
func newMouse() *humanoid.Mouse {
	return humanoid.New(cfg.Motion, observability.GetLogger().Named("humanoid"), input.New())
}

// actionContext returns a context cancelled on SIGINT so a long move can be
// aborted from the terminal; cancellation is honored at the next waypoint.
func actionContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// parsePoint converts a pair of coordinate arguments into a Point.
func parsePoint(xArg, yArg string) (schemas.Point, error) {
	x, err := strconv.Atoi(xArg)
	if err != nil {
		return schemas.Point{}, fmt.Errorf("invalid x coordinate %q: %w", xArg, err)
	}
	y, err := strconv.Atoi(yArg)
	if err != nil {
		return schemas.Point{}, fmt.Errorf("invalid y coordinate %q: %w", yArg, err)
	}
	return schemas.Point{X: x, Y: y}, nil
}
