package material

import (
	"fmt"
	"time"

	"warehouse-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	WarningLowStock     = "LOW_STOCK"
	WarningExpiringSoon = "EXPIRING_SOON"
	WarningExpired      = "EXPIRED"
)

const expiringSoonWindowDays = 7

// Warning is a derived report entry; nothing here is persisted.
type Warning struct {
	ID             uint                  `json:"id"`
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	Quantity       decimal.Decimal       `json:"quantity"`
	MinQuantity    decimal.Decimal       `json:"min_quantity"`
	Unit           string                `json:"unit"`
	ExpiryDate     *time.Time            `json:"expiry_date"`
	Status         models.MaterialStatus `json:"status"`
	WarningType    string                `json:"warning_type"`
	WarningMessage string                `json:"warning_message"`
}

// Warnings scans the catalog and reports low-stock, expiring-soon and expired
// materials. A material can appear in more than one category; there is no
// deduplication.
func Warnings(db *gorm.DB, today time.Time) ([]Warning, error) {
	var materials []models.Material
	if err := db.Find(&materials).Error; err != nil {
		return nil, err
	}

	warnings := []Warning{}

	for _, m := range materials {
		if m.Quantity.Cmp(m.MinQuantity) <= 0 && !expired(m.ExpiryDate, today) {
			warnings = append(warnings, newWarning(m, WarningLowStock,
				fmt.Sprintf("Low stock! Current quantity: %s %s", m.Quantity, m.Unit)))
		}
	}

	soonCutoff := dateOnly(today).AddDate(0, 0, expiringSoonWindowDays)
	for _, m := range materials {
		if m.ExpiryDate == nil || expired(m.ExpiryDate, today) {
			continue
		}
		if !dateOnly(*m.ExpiryDate).After(soonCutoff) {
			warnings = append(warnings, newWarning(m, WarningExpiringSoon,
				fmt.Sprintf("Expiring soon! Expiry date: %s", m.ExpiryDate.Format("2006-01-02"))))
		}
	}

	for _, m := range materials {
		if expired(m.ExpiryDate, today) {
			w := newWarning(m, WarningExpired,
				fmt.Sprintf("EXPIRED! Expiry date: %s", m.ExpiryDate.Format("2006-01-02")))
			w.Status = models.MaterialExpired
			warnings = append(warnings, w)
		}
	}

	return warnings, nil
}

func expired(expiryDate *time.Time, today time.Time) bool {
	return expiryDate != nil && dateOnly(*expiryDate).Before(dateOnly(today))
}

func newWarning(m models.Material, warningType, message string) Warning {
	return Warning{
		ID:             m.ID,
		Code:           m.Code,
		Name:           m.Name,
		Quantity:       m.Quantity,
		MinQuantity:    m.MinQuantity,
		Unit:           m.Unit,
		ExpiryDate:     m.ExpiryDate,
		Status:         m.Status,
		WarningType:    warningType,
		WarningMessage: message,
	}
}
