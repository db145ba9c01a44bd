package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalogo-libros/internal/domain/entity"
)

// decoderFor envuelve r para convertir el charset indicado a UTF-8.
func decoderFor(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToUpper(strings.ReplaceAll(charset, "_", "-")) {
	case "", "UTF-8", "UTF8":
		return r, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
}

// parseBooks lee las filas del CSV. La primera fila se omite si es encabezado.
func parseBooks(r io.Reader, charset string) ([]*entity.Book, error) {
	dec, err := decoderFor(r, charset)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(dec)

	first, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	if line, _, _ := strings.Cut(string(first), "\n"); strings.Count(line, ";") > strings.Count(line, ",") {
		cr.Comma = ';'
	}

	var books []*entity.Book
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row == 1 && isHeader(rec) {
			continue
		}
		b, err := bookFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", row, err)
		}
		books = append(books, b)
	}
	return books, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "title", "titulo", "título":
		return true
	}
	return false
}

func bookFromRecord(rec []string) (*entity.Book, error) {
	if len(rec) < 6 {
		return nil, fmt.Errorf("se esperaban 6 columnas, hay %d", len(rec))
	}
	field := func(i int) string { return strings.TrimSpace(rec[i]) }

	pages, err := atoiOrZero(field(3))
	if err != nil {
		return nil, fmt.Errorf("páginas: %w", err)
	}
	year, err := atoiOrZero(field(4))
	if err != nil {
		return nil, fmt.Errorf("año: %w", err)
	}
	price := decimal.Zero
	if s := field(5); s != "" {
		if !strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", ".")
		}
		price, err = decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("precio: %w", err)
		}
	}
	return &entity.Book{
		Title:  field(0),
		Author: field(1),
		ISBN:   field(2),
		Pages:  pages,
		Year:   year,
		Price:  price,
	}, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
