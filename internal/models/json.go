package models

import "github.com/shopspring/decimal"

func init() {
	// Prices and amounts serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
