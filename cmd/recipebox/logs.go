package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/recipebox/internal/app"
	"github.com/five82/recipebox/internal/config"
	"github.com/five82/recipebox/internal/logging"
)

func newLogsCmd(opts *app.Options) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of today's diagnostic log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out, err := logging.Tail(cfg.LogDir, lines)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no logs in %s\n", cfg.LogDir)
				return nil
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of trailing lines (0 prints all)")
	return cmd
}
