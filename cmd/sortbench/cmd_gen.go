package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/bench"
)

func newGenCmd() *cobra.Command {
	var (
		size int
		seed int64
		path string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random dataset file for 'run --input'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return errors.New("--size must be positive")
			}
			if err := validateConfig(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			data, err := bench.GenerateData(size, rand.New(rand.NewSource(seed)), cfg.MinValue, cfg.MaxValue)
			if err != nil {
				return err
			}
			if err := bench.WriteDataset(path, data); err != nil {
				return err
			}

			logger.Info("데이터 파일 생성", zap.String("path", path), zap.Int("size", size), zap.Int64("seed", seed))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d values to %s\n", size, path)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 100000, "number of values")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().StringVarP(&path, "file", "f", "", "output file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
