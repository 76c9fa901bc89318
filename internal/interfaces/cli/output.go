package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// printer writes either a JSON document or human-readable text
type printer struct {
	format string
	out    io.Writer
}

func newPrinter(opts *RootOptions, cmd *cobra.Command) *printer {
	return &printer{format: opts.Format, out: cmd.OutOrStdout()}
}

// emit writes v as JSON, or calls text for the text format
func (p *printer) emit(v interface{}, text func(w io.Writer)) error {
	if p.format == "json" {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(p.out)
	return nil
}

type cartView struct {
	State      string      `json:"state"`
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"totalItems"`
	Subtotal   float64     `json:"subtotal"`
	Unsynced   bool        `json:"unsynced,omitempty"`
}

func (p *printer) cart(app *App) error {
	c := app.Controller
	view := cartView{
		State:      c.State().String(),
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
		Unsynced:   c.Dirty(),
	}

	return p.emit(view, func(w io.Writer) {
		if len(view.Items) == 0 {
			fmt.Fprintln(w, "Your cart is empty.")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY")
		for _, line := range view.Items {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\n", line.ProductID, line.Name, line.Price, line.Quantity)
		}
		tw.Flush()
		fmt.Fprintf(w, "\n%d item(s), subtotal %.2f\n", view.TotalItems, view.Subtotal)
		if view.Unsynced {
			fmt.Fprintln(w, "Some changes could not be saved to your account and are kept on this device.")
		}
	})
}

func (p *printer) wishlist(lines []wishlist.Line) error {
	return p.emit(map[string]interface{}{"items": lines}, func(w io.Writer) {
		if len(lines) == 0 {
			fmt.Fprintln(w, "Your wishlist is empty.")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tADDED")
		for _, line := range lines {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", line.ProductID, line.Name, line.Price, line.AddedAt.Format("2006-01-02"))
		}
		tw.Flush()
	})
}
