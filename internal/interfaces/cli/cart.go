package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront/internal/storefront"
)

// NewCartCommand creates the cart command and its subcommands
func NewCartCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newPrinter(opts, cmd).cart(opts.app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newPrinter(opts, cmd).cart(opts.app)
		},
	})

	var quantity int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Put a product in the cart, replacing its quantity if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := snapshot(cmd.Context(), opts.app.Catalog, args[0])
			if err != nil {
				return err
			}
			opts.app.Controller.Add(item, quantity)
			opts.app.Controller.Wait()
			return newPrinter(opts, cmd).cart(opts.app)
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.app.Controller.Remove(args[0])
			opts.app.Controller.Wait()
			return newPrinter(opts, cmd).cart(opts.app)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set a product's quantity; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			opts.app.Controller.UpdateQuantity(args[0], n)
			opts.app.Controller.Wait()
			return newPrinter(opts, cmd).cart(opts.app)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.app.Controller.Clear()
			opts.app.Controller.Wait()
			return newPrinter(opts, cmd).cart(opts.app)
		},
	})

	return cmd
}

// snapshot copies the catalog entry's name, price and image into an item
func snapshot(ctx context.Context, catalog Catalog, id string) (storefront.Item, error) {
	p, err := catalog.Product(ctx, id)
	if err != nil {
		return storefront.Item{}, fmt.Errorf("product %s: %w", id, err)
	}
	return storefront.Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}, nil
}
