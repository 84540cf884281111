package parcel

import (
	"strings"

	"github.com/shopspring/decimal"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidWarehouse(code string) bool {
	return strings.TrimSpace(code) != ""
}

func isValidCost(cost decimal.Decimal) bool {
	return !cost.IsNegative()
}
