package material

import (
	"time"

	"warehouse-backend/internal/models"

	"github.com/shopspring/decimal"
)

// DeriveStatus computes the stock status of a material. Precedence: an expiry
// date strictly before today wins over everything; otherwise quantity at or
// below the minimum threshold means OUT_OF_STOCK (zero) or LOW_STOCK;
// otherwise AVAILABLE.
func DeriveStatus(quantity, minQuantity decimal.Decimal, expiryDate *time.Time, today time.Time) models.MaterialStatus {
	if expiryDate != nil && dateOnly(*expiryDate).Before(dateOnly(today)) {
		return models.MaterialExpired
	}
	if quantity.Cmp(minQuantity) <= 0 {
		if quantity.IsZero() {
			return models.MaterialOutOfStock
		}
		return models.MaterialLowStock
	}
	return models.MaterialAvailable
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
