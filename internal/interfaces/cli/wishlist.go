package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront/internal/storefront"
)

func requireSignIn(err error) error {
	if errors.Is(err, storefront.ErrAuthRequired) {
		return fmt.Errorf("%w (run storefront login)", err)
	}
	return err
}

// NewWishlistCommand creates the wishlist command and its subcommands. The
// wishlist exists only for signed-in users.
func NewWishlistCommand(opts *RootOptions) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		if opts.app.Controller.State() != storefront.StateAuthenticated {
			return requireSignIn(storefront.ErrAuthRequired)
		}
		return newPrinter(opts, cmd).wishlist(opts.app.Controller.Wishlist())
	}

	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show and change the wishlist",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the wishlist",
		Args:  cobra.NoArgs,
		RunE:  show,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.app.Controller.State() != storefront.StateAuthenticated {
				return requireSignIn(storefront.ErrAuthRequired)
			}
			item, err := snapshot(cmd.Context(), opts.app.Catalog, args[0])
			if err != nil {
				return err
			}
			added, err := opts.app.Controller.AddToWishlist(cmd.Context(), item)
			if err != nil {
				return requireSignIn(err)
			}
			if !added && opts.Format == "text" {
				fmt.Fprintln(cmd.OutOrStdout(), "Already in your wishlist.")
			}
			return newPrinter(opts, cmd).wishlist(opts.app.Controller.Wishlist())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.Controller.RemoveFromWishlist(cmd.Context(), args[0]); err != nil {
				return requireSignIn(err)
			}
			return newPrinter(opts, cmd).wishlist(opts.app.Controller.Wishlist())
		},
	})

	return cmd
}
