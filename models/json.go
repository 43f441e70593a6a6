package models

import "github.com/shopspring/decimal"

func init() {
	// Money goes out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
