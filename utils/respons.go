package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// CurrencySymbol prefixes every formatted amount.
var CurrencySymbol = "₹"

// FormatCurrency renders an amount with the currency symbol and two decimals,
// e.g. 525 -> "₹525.00".
func FormatCurrency(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
