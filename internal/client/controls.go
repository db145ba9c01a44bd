package client

import (
	"strconv"
	"strings"
)

// ControlKind tipo de botón en la barra de paginación.
type ControlKind int

const (
	ControlFirst ControlKind = iota
	ControlPrev
	ControlGap
	ControlPage
	ControlNext
	ControlLast
)

// Control un botón de la barra. Page es 0 para los separadores.
type Control struct {
	Kind    ControlKind
	Label   string
	Page    int
	Current bool
}

// Controls arma la barra de paginación para la página current de total.
// Se muestran las páginas a distancia <= 3 de la actual.
func Controls(current, total int) []Control {
	var out []Control
	if current > 5 {
		out = append(out, Control{Kind: ControlFirst, Label: "<<", Page: 1})
	}
	if current > 1 {
		out = append(out, Control{Kind: ControlPrev, Label: "<", Page: current - 1})
	}
	if current > 5 {
		out = append(out, Control{Kind: ControlGap, Label: "..."})
	}
	for p := max(1, current-3); p <= min(total, current+3); p++ {
		out = append(out, Control{Kind: ControlPage, Label: strconv.Itoa(p), Page: p, Current: p == current})
	}
	if current < total-3 {
		out = append(out, Control{Kind: ControlGap, Label: "..."})
	}
	if current < total {
		out = append(out, Control{Kind: ControlNext, Label: ">", Page: current + 1})
	}
	if current < total-3 {
		out = append(out, Control{Kind: ControlLast, Label: ">>", Page: total})
	}
	return out
}

// ControlsLine barra en una línea; la página actual va entre corchetes.
func ControlsLine(controls []Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		if c.Current {
			parts = append(parts, "["+c.Label+"]")
			continue
		}
		parts = append(parts, c.Label)
	}
	return strings.Join(parts, " ")
}
