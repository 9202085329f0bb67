// Package commands implements the siquant CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/c360studio/siquant/config"
	"github.com/c360studio/siquant/unit"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "siquant"
)

// app carries state shared by all subcommands. It is populated by the
// root command's PersistentPreRunE before any subcommand runs.
type app struct {
	logger *slog.Logger
	cfg    *config.Config
}

// Root builds the siquant root command with all subcommands attached.
func Root() *cobra.Command {
	a := &app{}

	var (
		logLevel  string
		precision int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "siquant",
		Short: "Dimensional analysis and unit-aware arithmetic",
		Long: `Siquant evaluates physical quantity expressions with full dimensional
checking. Values carry SI units; arithmetic verifies dimensional
compatibility and conversions rescale between equivalent units.

Examples:
  siquant eval "0.5 * 2 kg * (10 m/s)^2"
  siquant convert "100 km/h" "m/s"
  siquant dim pressure
  siquant unit "kg*m/s^2"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, logLevel, precision, format)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&precision, "precision", 0, "Significant digits for printed values (overrides config)")
	cmd.PersistentFlags().StringVar(&format, "format", "", "Output format: text or json (overrides config)")

	cmd.AddCommand(
		newEvalCmd(a),
		newConvertCmd(a),
		newDimCmd(a),
		newUnitCmd(a),
		newQuantitiesCmd(a),
		newConstantsCmd(a),
	)

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup configures logging, loads layered configuration, applies flag
// overrides, and registers any user-defined units with the default registry.
func (a *app) setup(cmd *cobra.Command, logLevel string, precision int, format string) error {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	loader := config.NewLoader(a.logger)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("precision") {
		cfg.Output.Precision = precision
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	reg := unit.DefaultRegistry()
	for _, uc := range cfg.Units {
		if _, err := reg.Define(uc.Symbol, uc.Name, uc.Plural, uc.Definition); err != nil {
			return fmt.Errorf("define unit %q: %w", uc.Symbol, err)
		}
		a.logger.Debug("Registered custom unit", "symbol", uc.Symbol, "definition", uc.Definition)
	}

	return nil
}
