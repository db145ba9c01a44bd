package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
	"github.com/jhoicas/catalogo-libros/internal/client"
	"github.com/jhoicas/catalogo-libros/pkg/money"
)

func newListCommand(opts *options) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Short:   "Listar una página del catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout())
			defer cancel()

			view := client.NewView(opts.client(), nil)
			if pageSize > 0 {
				if err := view.SetPageSize(ctx, pageSize); err != nil {
					return err
				}
			}
			if err := view.Goto(ctx, page); err != nil {
				return err
			}
			renderPage(cmd.OutOrStdout(), view.Snapshot(), opts.money())
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "página a mostrar")
	cmd.Flags().IntVarP(&pageSize, "page-size", "s", 0, "libros por página (0 = valor del servidor)")
	return cmd
}

func renderPage(w io.Writer, s client.Snapshot, m *money.Formatter) {
	if s.Page == nil {
		return
	}
	if len(s.Page.Books) == 0 {
		fmt.Fprintln(w, "No hay libros en esta página.")
	} else {
		renderBooks(w, s.Page.Books, m)
	}
	fmt.Fprintf(w, "\nPágina %d de %d (%d libros)\n", s.CurrentPage, s.Page.TotalPages, s.Page.TotalItems)
	if line := client.ControlsLine(s.Controls()); line != "" {
		fmt.Fprintln(w, line)
	}
}

func renderBooks(w io.Writer, books []dto.BookResponse, m *money.Formatter) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTÍTULO\tAUTOR\tISBN\tPÁGINAS\tAÑO\tPRECIO")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n", b.ID, b.Title, b.Author, b.ISBN, b.Pages, b.Year, m.Format(b.Price))
	}
	_ = tw.Flush()
}
