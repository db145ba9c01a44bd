// Package pagination calcula ventanas de página sobre el catálogo ordenado.
//
// Las mismas reglas sirven para una secuencia en memoria (Paginate) y para
// almacenes que responden con un conteo más un rango (Compute + FromRange):
// para las mismas entradas ambos caminos producen el mismo resultado.
package pagination

// Valores por defecto si la configuración no indica otros.
const (
	DefaultPage     = 1
	DefaultPageSize = 2
	DefaultMaxSize  = 100
)

// Request página solicitada. Valores menores a 1 se consideran ausentes.
type Request struct {
	Page     int
	PageSize int
}

// Defaults valores usados por Normalize. MaxPageSize 0 desactiva el tope.
type Defaults struct {
	PageSize    int
	MaxPageSize int
}

// Window metadatos de una página, independientes de los ítems.
type Window struct {
	Offset      int
	Limit       int
	CurrentPage int
	PerPage     int
	TotalPages  int
	TotalItems  int
	HasNextPage bool
}

// Result página de ítems con sus metadatos.
type Result[T any] struct {
	Items       []T
	PerPage     int
	CurrentPage int
	HasNextPage bool
	TotalPages  int
	TotalItems  int
}

// Normalize aplica los valores por defecto y el tope de tamaño de página.
func Normalize(req Request, d Defaults) Request {
	if d.PageSize <= 0 {
		d.PageSize = DefaultPageSize
	}
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.PageSize < 1 {
		req.PageSize = d.PageSize
	}
	if d.MaxPageSize > 0 && req.PageSize > d.MaxPageSize {
		req.PageSize = d.MaxPageSize
	}
	return req
}

// Compute calcula la ventana para un total de ítems. Una página fuera de rango
// no es un error: Limit queda en 0 y la página sale vacía.
func Compute(totalItems int, req Request) Window {
	req = Normalize(req, Defaults{PageSize: req.PageSize})
	if totalItems < 0 {
		totalItems = 0
	}
	totalPages := totalItems / req.PageSize
	if totalItems%req.PageSize != 0 {
		totalPages++
	}

	// Fuera de rango se decide antes de multiplicar: page*pageSize puede desbordar.
	offset, limit := totalItems, 0
	if req.Page <= totalPages {
		offset = (req.Page - 1) * req.PageSize
		limit = min(req.PageSize, totalItems-offset)
	}

	return Window{
		Offset:      offset,
		Limit:       limit,
		CurrentPage: req.Page,
		PerPage:     req.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNextPage: req.Page < totalPages,
	}
}

// Paginate corta la página pedida de una secuencia completa ya ordenada.
func Paginate[T any](all []T, req Request) Result[T] {
	w := Compute(len(all), req)
	items := make([]T, 0, w.Limit)
	if w.Limit > 0 {
		items = append(items, all[w.Offset:w.Offset+w.Limit]...)
	}
	return fromWindow(w, items)
}

// FromRange arma el resultado a partir de un conteo y los ítems que devolvió
// una consulta de rango hecha con Compute(totalItems, req).
func FromRange[T any](totalItems int, req Request, items []T) Result[T] {
	w := Compute(totalItems, req)
	if len(items) > w.Limit {
		items = items[:w.Limit]
	}
	if items == nil {
		items = make([]T, 0)
	}
	return fromWindow(w, items)
}

func fromWindow[T any](w Window, items []T) Result[T] {
	return Result[T]{
		Items:       items,
		PerPage:     w.PerPage,
		CurrentPage: w.CurrentPage,
		HasNextPage: w.HasNextPage,
		TotalPages:  w.TotalPages,
		TotalItems:  w.TotalItems,
	}
}

// Map convierte los ítems de un resultado conservando sus metadatos.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	items := make([]U, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, fn(it))
	}
	return Result[U]{
		Items:       items,
		PerPage:     r.PerPage,
		CurrentPage: r.CurrentPage,
		HasNextPage: r.HasNextPage,
		TotalPages:  r.TotalPages,
		TotalItems:  r.TotalItems,
	}
}
