// Package money formatea precios según el idioma del usuario.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea importes con dos decimales y separadores del idioma.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter construye el formateador. Un locale inválido usa pt-BR.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Amount número con dos decimales, sin símbolo.
func (f *Formatter) Amount(d decimal.Decimal) string {
	x, _ := d.Round(2).Float64()
	return f.printer.Sprint(number.Decimal(x, number.Scale(2)))
}

// Format importe con símbolo, ej. "R$ 1.234,50".
func (f *Formatter) Format(d decimal.Decimal) string {
	if f.symbol == "" {
		return f.Amount(d)
	}
	return f.symbol + " " + f.Amount(d)
}
