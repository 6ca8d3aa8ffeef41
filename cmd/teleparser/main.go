// Command teleparser parses a Telegram cache4.db and writes per-table
// dumps plus a chronological timeline into an output directory.
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed to all components via dependency injection
//   - No global slog configuration (no slog.SetDefault)
//   - Components scope loggers with their own attributes
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/RealityNet/teleparser/internal/logging"
	"github.com/RealityNet/teleparser/internal/tblob"
	"github.com/RealityNet/teleparser/internal/tdb"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "teleparser <cache4.db> <outdirectory>",
		Short: "Telegram cache4.db forensic parser",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logging.VerbosityLevel(verbosity),
			}))
			return run(logger, args[0], args[1])
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase log verbosity (repeatable: -v warnings, -vv info, -vvv debug)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dbPath, outDir string) error {
	if fi, err := os.Stat(dbPath); err != nil || fi.IsDir() {
		logger.Error("input database not found", "path", dbPath)
		return fmt.Errorf("input database not found: %s", dbPath)
	}
	if fi, err := os.Stat(outDir); err != nil || !fi.IsDir() {
		logger.Error("output directory not found", "path", outDir)
		return fmt.Errorf("output directory not found: %s", outDir)
	}

	dec := tblob.NewDecoder(logger)
	parser, err := tdb.Open(dbPath, dec, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		return err
	}
	defer parser.Close()

	if err := parser.Parse(); err != nil {
		logger.Error("parsing tables", "error", err)
		return err
	}
	if err := parser.WriteTables(outDir); err != nil {
		logger.Error("writing table dumps", "error", err)
		return err
	}
	if err := parser.WriteJSON(outDir); err != nil {
		logger.Error("writing json dumps", "error", err)
		return err
	}
	if err := parser.WriteTimeline(outDir); err != nil {
		logger.Error("writing timeline", "error", err)
		return err
	}

	logger.Info("done", "output", outDir)
	return nil
}
