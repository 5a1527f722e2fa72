package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/recipebox/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "recipebox: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree. The root command runs the TUI.
func newRootCmd() *cobra.Command {
	opts := &app.Options{}

	root := &cobra.Command{
		Use:   "recipebox",
		Short: "Browse, search and favorite recipes in the terminal",
		Long: `recipebox is a terminal recipe browser. Filter, search and sort the
catalog, expand ingredient and step lists, and mark favorites that are kept
between sessions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default is $HOME/.config/recipebox/config.toml)")
	flags.StringVar(&opts.StoreBackend, "store", "", "favorites store backend: toml, sqlite or memory")
	flags.StringVar(&opts.StorePath, "store-path", "", "favorites store location (overrides store_path)")
	flags.BoolVar(&opts.Ephemeral, "ephemeral", false, "keep favorites in memory for this run only")

	root.AddCommand(newListCmd(opts), newFavoriteCmd(opts), newLogsCmd(opts))
	return root
}
