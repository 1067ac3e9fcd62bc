package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortbench/complexity"
	"sortbench/report"
	"sortbench/store"
)

// openStore 설정 검증 후 저장소 열기
func openStore() (store.Store, error) {
	if err := validateConfig(); err != nil {
		return nil, err
	}
	return store.Open(cfg.Store.Backend, cfg.StorePath(), logger)
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.List(commandContext(cmd), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderHistory(runs))

			if path := cfg.StorePath(); path != "" {
				if size, err := store.DiskUsage(path); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s store: %s (%.2f KB)\n", cfg.Store.Backend, path, float64(size)/1024)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum runs to list (0: all)")
	return cmd
}

func newShowCmd() *cobra.Command {
	var (
		method string
		write  bool
		pretty bool
		theme  string
	)
	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Re-render tables and estimates for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			if cmd.Flags().Changed("method") {
				cfg.Complexity.Method = method
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}

			a := report.Analyze(run, complexity.Method(cfg.Complexity.Method))
			if pretty {
				out, err := report.RenderPretty(a, theme, 100)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), report.RenderTables(a))
			}

			if write {
				paths, err := report.NewWriter(writerOptions(cfg), logger).Write(ctx, a)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "complexity method: regression, endpoints")
	cmd.Flags().BoolVar(&write, "write", false, "regenerate report files and charts")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render the markdown report for the terminal")
	cmd.Flags().StringVar(&theme, "theme", "", "glamour style for --pretty (dark, light, notty; default auto)")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [run-id]",
		Short: "Remove a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(commandContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), report.RenderCatalog())
			return nil
		},
	}
}
