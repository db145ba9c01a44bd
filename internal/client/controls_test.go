package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-libros/internal/client"
)

func TestControls(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 0, ""},
		{1, 1, "[1]"},
		{1, 3, "[1] 2 3 >"},
		{3, 3, "< 1 2 [3]"},
		{1, 10, "[1] 2 3 4 ... > >>"},
		{5, 10, "< 2 3 4 [5] 6 7 8 ... > >>"},
		{6, 10, "<< < ... 3 4 5 [6] 7 8 9 ... > >>"},
		{7, 10, "<< < ... 4 5 6 [7] 8 9 10 >"},
		{10, 10, "<< < ... 7 8 9 [10]"},
		{12, 10, "<< < ... 9 10"},
	}
	for _, tt := range tests {
		got := client.ControlsLine(client.Controls(tt.current, tt.total))
		assert.Equal(t, tt.want, got, "current=%d total=%d", tt.current, tt.total)
	}
}

func TestControls_Destinos(t *testing.T) {
	cs := client.Controls(6, 20)

	assert.Equal(t, client.ControlFirst, cs[0].Kind)
	assert.Equal(t, 1, cs[0].Page)
	assert.Equal(t, 5, cs[1].Page)
	assert.Equal(t, client.ControlGap, cs[2].Kind)
	assert.Zero(t, cs[2].Page)

	last := cs[len(cs)-1]
	assert.Equal(t, client.ControlLast, last.Kind)
	assert.Equal(t, 20, last.Page)
	assert.Equal(t, 7, cs[len(cs)-2].Page)
}
