package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-libros/internal/client"
)

func newAddCommand(opts *options) *cobra.Command {
	var (
		in    client.BookInput
		price string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Args:  cobra.NoArgs,
		Short: "Agregar un libro al final del catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if price != "" {
				d, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("precio inválido %q: %w", price, err)
				}
				in.Price = d
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout())
			defer cancel()

			view := client.NewView(opts.client(), nil)
			if err := view.Create(ctx, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Libro %q agregado.\n\n", in.Title)
			renderPage(cmd.OutOrStdout(), view.Snapshot(), opts.money())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "título")
	f.StringVar(&in.Author, "author", "", "autor")
	f.StringVar(&in.ISBN, "isbn", "", "ISBN")
	f.IntVar(&in.Pages, "pages", 0, "número de páginas")
	f.IntVar(&in.Year, "year", 0, "año de publicación")
	f.StringVar(&price, "price", "", "precio (ej. 19.90)")
	return cmd
}
