package kit

import (
	"time"

	"github.com/cytochromxxx/StockControl/internal/domain"
)

// Formatos de fecha aceptados en las entradas del ledger: el formato alemán
// del laboratorio (21.10.2025) y el ISO (2025-10-21). Granularidad de día.
const (
	dateLayoutDE  = "02.01.2006"
	dateLayoutISO = "2006-01-02"
)

// ParseDate interpreta una fecha en formato DD.MM.YYYY o YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayoutDE, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateLayoutISO, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

// FormatDate serializa una fecha al formato de presentación del laboratorio.
func FormatDate(t time.Time) string {
	return t.Format(dateLayoutDE)
}
