package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/config"
	"sortbench/logging"
)

var (
	// 전역 플래그
	verbose    bool
	configPath string
	outputDir  string
	backend    string

	cfg    *config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Time sorting algorithms against input size",
		Long: `sortbench times merge sort, insertion sort and the runtime's built-in sort
in two styles (free functions and Sorter objects), tabulates and plots time
against input size, and estimates each algorithm's growth order from a
log-log regression.

Results are written under the output directory and every run is kept in a
local history store (bbolt, badger or pebble).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&outputDir, "out", "o", "", "output directory (default from config: results)")
	flags.StringVar(&backend, "store", "", "history store backend: bbolt, badger, pebble, none")

	root.AddCommand(
		newRunCmd(),
		newGenCmd(),
		newHistoryCmd(),
		newShowCmd(),
		newDeleteCmd(),
		newAlgorithmsCmd(),
	)
	return root
}

// setup 설정 로드 -> 전역 플래그 반영 -> 로거 초기화
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		loaded.Output.Dir = outputDir
	}
	if cmd.Flags().Changed("store") {
		loaded.Store.Backend = backend
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}

	l, err := logging.New(loaded.Logging.Level, loaded.Logging.Development)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
