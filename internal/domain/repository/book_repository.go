package repository

import (
	"context"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
)

// BookRepository define el puerto de persistencia del catálogo (DIP).
// El orden del catálogo es el de inserción (ID ascendente) en todas las implementaciones.
type BookRepository interface {
	// Create asigna un ID nuevo al libro y lo agrega al final del catálogo.
	Create(ctx context.Context, book *entity.Book) error
	// Delete elimina el libro con ese ID; si no existe no hace nada.
	Delete(ctx context.Context, id int64) error
	// List devuelve el catálogo completo en orden.
	List(ctx context.Context) ([]*entity.Book, error)
	Count(ctx context.Context) (int64, error)
	// ListRange devuelve hasta limit libros a partir de offset (base cero).
	ListRange(ctx context.Context, offset, limit int) ([]*entity.Book, error)
	Close(ctx context.Context) error
}
