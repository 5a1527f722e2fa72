package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/recipebox/internal/app"
	"github.com/five82/recipebox/internal/render"
)

type listFlags struct {
	filter      string
	sort        string
	search      string
	ingredients bool
	steps       bool
}

func newListCmd(opts *app.Options) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the recipes matching a filter, search and sort",
		Long: `Print the derived recipe view without starting the TUI.

Filters: all, favorites, easy, medium, hard, quick (under 30 minutes).
Sorts: none, name, time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.Open(*opts)
			if err != nil {
				return err
			}
			defer session.Close()

			summary, cards := session.List(app.ListOptions{
				Filter: flags.filter,
				Sort:   flags.sort,
				Search: flags.search,
			})
			for i := range cards {
				cards[i].IngredientsVisible = flags.ingredients
				cards[i].StepsVisible = flags.steps
			}
			printCards(cmd.OutOrStdout(), summary, cards)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.filter, "filter", "f", "all", "filter to apply")
	cmd.Flags().StringVarP(&flags.sort, "sort", "s", "none", "sort order")
	cmd.Flags().StringVarP(&flags.search, "search", "q", "", "match name or ingredient (case-insensitive)")
	cmd.Flags().BoolVarP(&flags.ingredients, "ingredients", "i", false, "include ingredient lists")
	cmd.Flags().BoolVarP(&flags.steps, "steps", "t", false, "include nested step lists")
	return cmd
}

func printCards(w io.Writer, summary string, cards []render.Card) {
	fmt.Fprintln(w, summary)
	for _, card := range cards {
		fmt.Fprintln(w)
		for _, line := range card.Lines("  ") {
			fmt.Fprintln(w, line)
		}
	}
}
