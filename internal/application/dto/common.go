package dto

import "github.com/shopspring/decimal"

func init() {
	// El cliente espera price como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
