// bookctl consulta y modifica el catálogo de libros desde la terminal.
//
// Uso: bookctl list --page 2 --page-size 5
//
//	bookctl add --title "Livro 3" --author "Autor 3" --price 19.90
//	bookctl delete 3
//
// El servidor se toma de --server o de BOOKCTL_SERVER (por defecto http://localhost:3001).
package main

import (
	"os"

	"github.com/jhoicas/catalogo-libros/cmd/bookctl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
