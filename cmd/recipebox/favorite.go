package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/recipebox/internal/app"
	"github.com/five82/recipebox/internal/recipe"
)

func newFavoriteCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a recipe in the saved favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}

			session, err := app.Open(*opts)
			if err != nil {
				return err
			}
			defer session.Close()

			r, fav, err := session.ToggleFavorite(id)
			if errors.Is(err, recipe.ErrNotFound) {
				return fmt.Errorf("no recipe with id %d", id)
			}
			if err != nil {
				return err
			}

			verb := "Removed from"
			if fav {
				verb = "Added to"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s favorites: %s\n", verb, r.Name)
			return nil
		},
	}
}
