package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/internal/config"
	"github.com/goliatone/go-mockfill/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	appConfig = config.Default()
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "mockfill",
	Short: "Fill groups of text placeholders with mock content",
	Long: `mockfill groups the text placeholders of a snapshot (by layer name, current
text, position or size) and fills one group with content composed from
custom text, fetched word lists, random numbers and random dates.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		built, err := logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		appConfig = cfg
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(groupsCmd, listsCmd, generateCmd, interactiveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
