// Package client consume la API del catálogo y modela la vista paginada.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

// BookInput datos para crear un libro desde el cliente.
type BookInput struct {
	Title  string          `json:"title"`
	Author string          `json:"author"`
	ISBN   string          `json:"isbn"`
	Pages  int             `json:"pages"`
	Year   int             `json:"year"`
	Price  decimal.Decimal `json:"price"`
}

// APIError respuesta no exitosa del servidor.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("catálogo: HTTP %d", e.Status)
	}
	return fmt.Sprintf("catálogo: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// API operaciones remotas que usa la vista.
type API interface {
	List(ctx context.Context, page, pageSize int) (*dto.BookListResponse, error)
	Create(ctx context.Context, in BookInput) (*dto.BookResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Client cliente HTTP+JSON de la API del catálogo. Sin reintentos.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

var _ API = (*Client)(nil)

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger registra los errores de transporte.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New crea un cliente para baseURL (ej. http://localhost:3001).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// List pide una página. page o pageSize <= 0 se omiten y el servidor aplica sus valores por defecto.
func (c *Client) List(ctx context.Context, page, pageSize int) (*dto.BookListResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	target := c.baseURL + "/books"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var out dto.BookListResponse
	if err := c.do(ctx, http.MethodGet, target, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create da de alta un libro y devuelve el libro con su ID.
func (c *Client) Create(ctx context.Context, in BookInput) (*dto.BookResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("codificar libro: %w", err)
	}
	var out dto.BookResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/books", body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un libro. El servidor responde 204 aunque el ID no exista.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/books/"+strconv.FormatInt(id, 10), nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, target string, body []byte, want int, out any) error {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", target).Msg("error de transporte")
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		apiErr := &APIError{Status: resp.StatusCode}
		var e dto.ErrorResponse
		if raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); json.Unmarshal(raw, &e) == nil {
			apiErr.Code, apiErr.Message = e.Code, e.Message
		}
		c.log.Warn().Int("status", resp.StatusCode).Str("code", apiErr.Code).Str("url", target).Msg("respuesta no exitosa")
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}
