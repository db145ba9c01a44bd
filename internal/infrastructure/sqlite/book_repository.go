// Package sqlite implementa el catálogo sobre un archivo SQLite (driver puro Go de modernc).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// AUTOINCREMENT evita que SQLite reutilice el ID más alto tras un borrado.
const booksTable = `
	CREATE TABLE IF NOT EXISTS books (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		title  TEXT    NOT NULL DEFAULT '',
		author TEXT    NOT NULL DEFAULT '',
		isbn   TEXT    NOT NULL DEFAULT '',
		pages  INTEGER NOT NULL DEFAULT 0,
		year   INTEGER NOT NULL DEFAULT 0,
		price  TEXT    NOT NULL DEFAULT '0'
	)`

const bookColumns = `id, title, author, isbn, pages, year, price`

// BookRepo catálogo persistido en SQLite.
type BookRepo struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y prepara la tabla.
func Open(ctx context.Context, path string) (*BookRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Una sola conexión: ":memory:" es por conexión y SQLite serializa escrituras.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, booksTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create books table: %w", err)
	}
	return &BookRepo{db: db}, nil
}

func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO books (title, author, isbn, pages, year, price) VALUES (?, ?, ?, ?, ?, ?)`,
		book.Title, book.Author, book.ISBN, book.Pages, book.Year, book.Price.String(),
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert book id: %w", err)
	}
	book.ID = id
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return scanBooks(rows)
}

func (r *BookRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

func (r *BookRepo) ListRange(ctx context.Context, offset, limit int) ([]*entity.Book, error) {
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books range: %w", err)
	}
	return scanBooks(rows)
}

func (r *BookRepo) Close(_ context.Context) error {
	return r.db.Close()
}

func scanBooks(rows *sql.Rows) ([]*entity.Book, error) {
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
