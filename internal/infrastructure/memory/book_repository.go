// Package memory implementa el catálogo en memoria del proceso.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-libros/internal/domain"
	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo catálogo en memoria. Se construye una vez al arrancar y vive lo que
// vive el proceso; no hay estado global compartido.
type BookRepo struct {
	mu     sync.RWMutex
	books  []entity.Book
	nextID int64
	closed bool
}

// NewBookRepository construye un catálogo vacío.
func NewBookRepository() *BookRepo {
	return &BookRepo{nextID: 1}
}

// DemoBooks los dos libros de ejemplo con que arranca el modo demo.
func DemoBooks() []entity.Book {
	return []entity.Book{
		{Title: "Livro 1", Author: "Autor 1", ISBN: "123456789", Pages: 200, Year: 2020, Price: decimal.NewFromInt(30)},
		{Title: "Livro 2", Author: "Autor 2", ISBN: "987654321", Pages: 250, Year: 2019, Price: decimal.NewFromInt(25)},
	}
}

// Create asigna el siguiente ID y agrega el libro al final.
func (r *BookRepo) Create(_ context.Context, book *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrStoreClosed
	}
	book.ID = r.nextID
	r.nextID++
	r.books = append(r.books, *book)
	return nil
}

// Delete elimina el libro con ese ID conservando el orden del resto.
func (r *BookRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrStoreClosed
	}
	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return nil
}

// List copia el catálogo completo.
func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	return r.ListRange(ctx, 0, -1)
}

// Count número de libros.
func (r *BookRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, domain.ErrStoreClosed
	}
	return int64(len(r.books)), nil
}

// ListRange copia hasta limit libros desde offset. limit negativo significa sin límite.
func (r *BookRepo) ListRange(_ context.Context, offset, limit int) ([]*entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, domain.ErrStoreClosed
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.books) {
		return []*entity.Book{}, nil
	}
	end := len(r.books)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Book, 0, end-offset)
	for i := offset; i < end; i++ {
		b := r.books[i]
		out = append(out, &b)
	}
	return out, nil
}

// Close libera el catálogo; las llamadas posteriores fallan con ErrStoreClosed.
func (r *BookRepo) Close(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.books = nil
	return nil
}
