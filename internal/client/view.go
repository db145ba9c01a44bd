package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
)

// State estado de la vista paginada.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot copia del estado de la vista en un instante.
type Snapshot struct {
	State       State
	CurrentPage int
	PageSize    int // 0 = valor por defecto del servidor
	Page        *dto.BookListResponse
	Err         error
}

// Controls barra de paginación de la página cargada (vacía si no hay página).
func (s Snapshot) Controls() []Control {
	if s.Page == nil {
		return nil
	}
	return Controls(s.CurrentPage, s.Page.TotalPages)
}

// View máquina de estados Idle → Loading → Loaded | Failed sobre una API.
// Solo la respuesta de la última petición cambia el estado.
type View struct {
	api API
	log *logger.Logger

	mu       sync.Mutex
	state    State
	current  int
	pageSize int
	page     *dto.BookListResponse
	err      error
	seq      uint64
}

// NewView crea una vista en estado Idle posicionada en la página 1.
func NewView(api API, log *logger.Logger) *View {
	if log == nil {
		log = logger.Nop()
	}
	return &View{api: api, log: log, current: 1}
}

// Snapshot devuelve el estado actual.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{State: v.state, CurrentPage: v.current, PageSize: v.pageSize, Page: v.page, Err: v.err}
}

// Fetch recarga la página actual.
func (v *View) Fetch(ctx context.Context) error {
	v.mu.Lock()
	page, size := v.current, v.pageSize
	v.mu.Unlock()
	return v.load(ctx, page, size)
}

// Next avanza una página si la actual no es la última.
func (v *View) Next(ctx context.Context) error {
	v.mu.Lock()
	if v.page == nil || v.current >= v.page.TotalPages {
		v.mu.Unlock()
		return nil
	}
	page, size := v.current+1, v.pageSize
	v.mu.Unlock()
	return v.load(ctx, page, size)
}

// Prev retrocede una página si la actual no es la primera.
func (v *View) Prev(ctx context.Context) error {
	v.mu.Lock()
	if v.current <= 1 {
		v.mu.Unlock()
		return nil
	}
	page, size := v.current-1, v.pageSize
	v.mu.Unlock()
	return v.load(ctx, page, size)
}

// Goto carga la página indicada (mínimo 1).
func (v *View) Goto(ctx context.Context, page int) error {
	v.mu.Lock()
	size := v.pageSize
	v.mu.Unlock()
	return v.load(ctx, max(page, 1), size)
}

// SetPageSize cambia el tamaño de página y vuelve a la página 1.
// n <= 0 vuelve al valor por defecto del servidor.
func (v *View) SetPageSize(ctx context.Context, n int) error {
	return v.load(ctx, 1, max(n, 0))
}

// Create da de alta un libro y recarga la página 1.
func (v *View) Create(ctx context.Context, in BookInput) error {
	if _, err := v.api.Create(ctx, in); err != nil {
		v.fail(err)
		return err
	}
	v.mu.Lock()
	size := v.pageSize
	v.mu.Unlock()
	return v.load(ctx, 1, size)
}

// Delete elimina un libro y recarga la página actual.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.api.Delete(ctx, id); err != nil {
		v.fail(err)
		return err
	}
	return v.Fetch(ctx)
}

func (v *View) load(ctx context.Context, page, size int) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.state = StateLoading
	v.current, v.pageSize = page, size
	v.err = nil
	v.mu.Unlock()

	res, err := v.api.List(ctx, page, size)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		// Llegó una petición más nueva; se descarta esta respuesta.
		return err
	}
	if err != nil {
		v.state, v.err = StateFailed, err
		v.log.Warn().Err(err).Int("page", page).Msg("no se pudo cargar la página")
		return err
	}
	v.state, v.page = StateLoaded, res
	v.current = res.CurrentPage
	return nil
}

func (v *View) fail(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.state, v.err = StateFailed, err
}
