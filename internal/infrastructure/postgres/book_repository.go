package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

const booksTable = `
	CREATE TABLE IF NOT EXISTS books (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT        NOT NULL DEFAULT '',
		author     TEXT        NOT NULL DEFAULT '',
		isbn       TEXT        NOT NULL DEFAULT '',
		pages      BIGINT      NOT NULL DEFAULT 0,
		year       BIGINT      NOT NULL DEFAULT 0,
		price      NUMERIC     NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const bookColumns = `id, title, author, isbn, pages, year, price`

// BookRepo implementación del puerto BookRepository sobre PostgreSQL.
type BookRepo struct {
	pool *pgxpool.Pool
}

// NewBookRepository construye el adaptador y crea la tabla si no existe.
func NewBookRepository(ctx context.Context, pool *pgxpool.Pool) (*BookRepo, error) {
	if _, err := pool.Exec(ctx, booksTable); err != nil {
		return nil, fmt.Errorf("create books table: %w", err)
	}
	return &BookRepo{pool: pool}, nil
}

// Create inserta el libro; el ID lo asigna la secuencia y no se reutiliza.
func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (title, author, isbn, pages, year, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		book.Title, book.Author, book.ISBN, book.Pages, book.Year, book.Price,
	).Scan(&book.ID)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// Delete elimina un libro por ID. Cero filas afectadas no es error.
func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// List devuelve todos los libros en orden de inserción.
func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return scanBooks(rows)
}

// Count número de libros.
func (r *BookRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// ListRange devuelve hasta limit libros desde offset.
func (r *BookRepo) ListRange(ctx context.Context, offset, limit int) ([]*entity.Book, error) {
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books range: %w", err)
	}
	return scanBooks(rows)
}

// Close cierra el pool.
func (r *BookRepo) Close(_ context.Context) error {
	r.pool.Close()
	return nil
}

func scanBooks(rows pgx.Rows) ([]*entity.Book, error) {
	defer rows.Close()
	list := make([]*entity.Book, 0)
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Pages, &b.Year, &b.Price); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
