package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-libros/internal/client"
)

func newDeleteCommand(opts *options) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		Short:   "Eliminar un libro por ID y mostrar la página indicada",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id debe ser un entero: %q", args[0])
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout())
			defer cancel()

			view := client.NewView(opts.client(), nil)
			if err := view.Goto(ctx, page); err != nil {
				return err
			}
			if err := view.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Libro %d eliminado.\n\n", id)
			renderPage(cmd.OutOrStdout(), view.Snapshot(), opts.money())
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "página a mostrar después de eliminar")
	return cmd
}
