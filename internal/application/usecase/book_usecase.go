package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/pagination"
	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
)

// BookUseCase casos de uso del catálogo: listar paginado, crear y eliminar.
type BookUseCase struct {
	repo     repository.BookRepository
	defaults pagination.Defaults
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(repo repository.BookRepository, defaults pagination.Defaults) *BookUseCase {
	return &BookUseCase{repo: repo, defaults: defaults}
}

// Normalize aplica los valores por defecto configurados a una página pedida.
func (uc *BookUseCase) Normalize(page, pageSize int) pagination.Request {
	return pagination.Normalize(pagination.Request{Page: page, PageSize: pageSize}, uc.defaults)
}

// Page devuelve una página del catálogo como entidades. Una página fuera de rango sale vacía.
func (uc *BookUseCase) Page(ctx context.Context, page, pageSize int) (pagination.Result[*entity.Book], error) {
	req := uc.Normalize(page, pageSize)

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return pagination.Result[*entity.Book]{}, fmt.Errorf("contar libros: %w", err)
	}
	w := pagination.Compute(int(total), req)

	var items []*entity.Book
	if w.Limit > 0 {
		items, err = uc.repo.ListRange(ctx, w.Offset, w.Limit)
		if err != nil {
			return pagination.Result[*entity.Book]{}, fmt.Errorf("listar libros: %w", err)
		}
	}
	return pagination.FromRange(int(total), req, items), nil
}

// List devuelve la página con el sobre de respuesta de la API.
func (uc *BookUseCase) List(ctx context.Context, page, pageSize int) (*dto.BookListResponse, error) {
	res, err := uc.Page(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := pagination.Map(res, func(b *entity.Book) dto.BookResponse { return *toBookResponse(b) })
	return &dto.BookListResponse{
		Books:       out.Items,
		PerPage:     out.PerPage,
		CurrentPage: out.CurrentPage,
		HasNextPage: out.HasNextPage,
		TotalPages:  out.TotalPages,
		TotalItems:  out.TotalItems,
	}, nil
}

// Create agrega un libro al final del catálogo. No valida más allá de la coerción numérica.
func (uc *BookUseCase) Create(ctx context.Context, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	book := &entity.Book{
		Title:  in.Title,
		Author: in.Author,
		ISBN:   in.ISBN,
		Pages:  int(in.Pages),
		Year:   int(in.Year),
		Price:  in.Price.Decimal,
	}
	if err := uc.repo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("crear libro: %w", err)
	}
	return toBookResponse(book), nil
}

// Delete elimina un libro por ID. Eliminar un ID inexistente no es error.
func (uc *BookUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar libro %d: %w", id, err)
	}
	return nil
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	if b == nil {
		return nil
	}
	return &dto.BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
		Pages:  b.Pages,
		Year:   b.Year,
		Price:  b.Price,
	}
}
