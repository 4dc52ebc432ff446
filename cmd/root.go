package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gochemics/internal/config"
	"github.com/alexiusacademia/gochemics/internal/version"
)

var (
	cfgFile  string
	logLevel string

	// cfg is loaded before any subcommand runs
	cfg = config.Default()

	logger = logrus.StandardLogger()
)

var rootCmd = &cobra.Command{
	Use:   "gochemics",
	Short: "Chemical engineering calculators",
	Long: `gochemics - Go Chemical Engineering Calculators

A CLI tool for common chemical and biomass engineering calculations:
  - Proximate analysis conversion between as-received, dry and
    dry ash-free bases
  - Terminal rise velocity of gas bubbles in liquids, with automatic
    selection of the flow regime
  - Drag coefficient of a rigid sphere

Settings can be read from a TOML file given by --config or by the
GOCHEMICS_CONFIG environment variable.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, version.Banner())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Commands:")
		fmt.Fprintln(out, "    • proximate        Convert a proximate analysis between bases")
		fmt.Fprintln(out, "    • bubble velocity  Rise velocity of a single bubble")
		fmt.Fprintln(out, "    • bubble sweep     Rise velocity over a range of diameters")
		fmt.Fprintln(out, "    • drag             Drag coefficient of a sphere")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gochemics --help' to see available commands.")
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a TOML configuration file (default $"+config.EnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides the config file)")
}

// setup loads the configuration and configures the logger
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.Log.Level = logLevel
	}
	lvl, err := c.LogLevel()
	if err != nil {
		return err
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	cfg = c
	logger.WithFields(logrus.Fields{
		"config":    cfgFile,
		"tolerance": cfg.Proximate.Tolerance,
		"gravity":   cfg.Bubble.Gravity,
		"fluid":     cfg.Bubble.Fluid,
	}).Debug("configuration loaded")
	return nil
}
