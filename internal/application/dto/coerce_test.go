package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-libros/internal/application/dto"
)

func TestCreateBookRequest_Coercion(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		pages int
		year  int
		price string
	}{
		{"numeros", `{"pages":200,"year":2020,"price":30.5}`, 200, 2020, "30.5"},
		{"strings", `{"pages":"200","year":" 2020 ","price":"30.50"}`, 200, 2020, "30.5"},
		{"null", `{"pages":null,"year":null,"price":null}`, 0, 0, "0"},
		{"vacios", `{"pages":"","year":"","price":""}`, 0, 0, "0"},
		{"ausentes", `{"title":"x"}`, 0, 0, "0"},
		{"truncado", `{"pages":12.9,"year":"2019.5"}`, 12, 2019, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in dto.CreateBookRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, dto.FlexInt(tt.pages), in.Pages)
			assert.Equal(t, dto.FlexInt(tt.year), in.Year)
			assert.True(t, decimal.RequireFromString(tt.price).Equal(in.Price.Decimal), "price=%s", in.Price)
		})
	}
}

func TestCreateBookRequest_NoNumerico(t *testing.T) {
	for _, body := range []string{
		`{"pages":"muchas"}`,
		`{"year":true}`,
		`{"price":"caro"}`,
		`{"price":[1]}`,
	} {
		var in dto.CreateBookRequest
		assert.Error(t, json.Unmarshal([]byte(body), &in), body)
	}
}

func TestBookResponse_PrecioComoNumero(t *testing.T) {
	out, err := json.Marshal(dto.BookResponse{ID: 1, Price: decimal.RequireFromString("25.00")})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":25`)
	assert.NotContains(t, string(out), `"price":"`)
}
