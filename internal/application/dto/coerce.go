package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexInt entero que acepta número JSON, string numérico, null o "" (cero).
// Los decimales se truncan.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s, isNull, err := rawNumber(data)
	if err != nil {
		return err
	}
	if isNull || s == "" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("entero inválido: %s", data)
	}
	*f = FlexInt(math.Trunc(x))
	return nil
}

// FlexDecimal decimal que acepta número JSON, string numérico, null o "" (cero).
type FlexDecimal struct {
	decimal.Decimal
}

func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	s, isNull, err := rawNumber(data)
	if err != nil {
		return err
	}
	if isNull || s == "" {
		f.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("decimal inválido: %s", data)
	}
	f.Decimal = d
	return nil
}

func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	return f.Decimal.MarshalJSON()
}

// rawNumber extrae el texto de un número JSON o de un string JSON.
func rawNumber(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", true, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return strings.TrimSpace(s), false, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, fmt.Errorf("se esperaba un número: %s", data)
	}
	return n.String(), false, nil
}
