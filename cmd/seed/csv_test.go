package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseBooks_Latin1PuntoYComa(t *testing.T) {
	utf := "título;autor;isbn;páginas;año;precio\nCien años de soledad;García Márquez;978-0307474728;417;1967;59,90\nDom Casmurro;Machado de Assis;;256;1899;\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	books, err := parseBooks(bytes.NewReader([]byte(latin)), "ISO-8859-1")
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "Cien años de soledad", books[0].Title)
	assert.Equal(t, "García Márquez", books[0].Author)
	assert.Equal(t, 417, books[0].Pages)
	assert.Equal(t, 1967, books[0].Year)
	assert.True(t, decimal.RequireFromString("59.90").Equal(books[0].Price))

	assert.Equal(t, "", books[1].ISBN)
	assert.True(t, books[1].Price.IsZero())
}

func TestParseBooks_UTF8Comas(t *testing.T) {
	in := "Livro 1,Autor 1,123456789,200,2020,30.0\nLivro 2,Autor 2,987654321,250,2019,25.0\n"
	books, err := parseBooks(strings.NewReader(in), "utf-8")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Livro 2", books[1].Title)
	assert.True(t, decimal.NewFromInt(25).Equal(books[1].Price))
}

func TestParseBooks_Errores(t *testing.T) {
	_, err := parseBooks(strings.NewReader("a,b,c\n"), "utf-8")
	assert.ErrorContains(t, err, "fila 1")

	_, err = parseBooks(strings.NewReader("a,b,c,muchas,2000,1\n"), "utf-8")
	assert.ErrorContains(t, err, "páginas")

	_, err = parseBooks(strings.NewReader(""), "EBCDIC")
	assert.ErrorContains(t, err, "charset")
}
