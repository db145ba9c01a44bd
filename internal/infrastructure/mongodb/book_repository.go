// Package mongodb implementa el catálogo sobre una colección de MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
	"github.com/jhoicas/catalogo-libros/internal/domain/repository"
	"github.com/jhoicas/catalogo-libros/pkg/config"
)

var _ repository.BookRepository = (*BookRepo)(nil)

const (
	booksCollection    = "books"
	countersCollection = "counters"
	booksCounterID     = "books"
)

// bookDoc documento persistido. El ID entero sale del contador, no de _id.
type bookDoc struct {
	ID     int64           `bson:"id"`
	Title  string          `bson:"title"`
	Author string          `bson:"author"`
	ISBN   string          `bson:"isbn"`
	Pages  int             `bson:"pages"`
	Year   int             `bson:"year"`
	Price  bson.Decimal128 `bson:"price"`
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// BookRepo catálogo en una colección de documentos.
type BookRepo struct {
	client   *mongo.Client
	books    *mongo.Collection
	counters *mongo.Collection
}

// Connect abre el cliente, verifica la conexión y prepara el índice único por id.
func Connect(ctx context.Context, cfg config.MongoConfig) (*BookRepo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	repo, err := NewBookRepository(ctx, client, cfg.Database)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return repo, nil
}

// NewBookRepository construye el repositorio sobre un cliente ya conectado.
func NewBookRepository(ctx context.Context, client *mongo.Client, database string) (*BookRepo, error) {
	db := client.Database(database)
	books := db.Collection(booksCollection)

	_, err := books.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create books index: %w", err)
	}

	return &BookRepo{
		client:   client,
		books:    books,
		counters: db.Collection(countersCollection),
	}, nil
}

// nextID incrementa el contador de forma atómica; los IDs nunca se reutilizan.
func (r *BookRepo) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var c counterDoc
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": booksCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next book id: %w", err)
	}
	return c.Seq, nil
}

func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	price, err := bson.ParseDecimal128(book.Price.String())
	if err != nil {
		return fmt.Errorf("book price: %w", err)
	}
	doc := bookDoc{
		ID:     id,
		Title:  book.Title,
		Author: book.Author,
		ISBN:   book.ISBN,
		Pages:  book.Pages,
		Year:   book.Year,
		Price:  price,
	}
	if _, err := r.books.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	book.ID = id
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.books.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
}

func (r *BookRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.books.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

func (r *BookRepo) ListRange(ctx context.Context, offset, limit int) ([]*entity.Book, error) {
	if offset < 0 {
		offset = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.find(ctx, opts)
}

func (r *BookRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *BookRepo) find(ctx context.Context, opts *options.FindOptionsBuilder) ([]*entity.Book, error) {
	cursor, err := r.books.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	list := make([]*entity.Book, 0, len(docs))
	for _, d := range docs {
		b, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, nil
}

func (d bookDoc) toEntity() (*entity.Book, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return nil, errors.Join(fmt.Errorf("book %d: precio inválido", d.ID), err)
	}
	return &entity.Book{
		ID:     d.ID,
		Title:  d.Title,
		Author: d.Author,
		ISBN:   d.ISBN,
		Pages:  d.Pages,
		Year:   d.Year,
		Price:  price,
	}, nil
}
