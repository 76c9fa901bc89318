package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront/internal/domain/product"
)

// NewProductsCommand creates the products command
func NewProductsCommand(opts *RootOptions) *cobra.Command {
	var req product.ListRequest

	cmd := &cobra.Command{
		Use:   "products [search]",
		Short: "List catalog products",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Search = strings.Join(args, " ")

			resp, err := opts.app.Catalog.Products(cmd.Context(), req)
			if err != nil {
				return err
			}

			return newPrinter(opts, cmd).emit(resp, func(w io.Writer) {
				if len(resp.Products) == 0 {
					fmt.Fprintln(w, "No products found.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING")
				for _, p := range resp.Products {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.1f\n", p.ID, p.Name, p.Category, p.Price, p.Rating)
				}
				tw.Flush()
				fmt.Fprintf(w, "\npage %d of %d (%d total)\n", resp.Pagination.Page, resp.Pagination.TotalPages, resp.Pagination.Total)
			})
		},
	}

	cmd.Flags().StringVar(&req.Category, "category", "", "category slug")
	cmd.Flags().StringVar(&req.Sort, "sort", "", "newest|price_asc|price_desc|rating|name")
	cmd.Flags().IntVar(&req.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&req.Limit, "limit", 20, "products per page")

	return cmd
}
