package kit

import (
	"time"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// HistoryDirection filtro por signo del asiento en la vista de auditoría.
type HistoryDirection string

const (
	DirectionAll      HistoryDirection = "all"
	DirectionWithdraw HistoryDirection = "withdraw" // solo amounts negativos
	DirectionRefill   HistoryDirection = "refill"   // solo amounts positivos
)

// ParseHistoryDirection interpreta el parámetro de dirección; cualquier valor
// desconocido cae en DirectionAll.
func ParseHistoryDirection(s string) HistoryDirection {
	switch HistoryDirection(s) {
	case DirectionWithdraw:
		return DirectionWithdraw
	case DirectionRefill:
		return DirectionRefill
	default:
		return DirectionAll
	}
}

// HistoryFilter criterios de la vista de auditoría del historial. Los campos
// en cero no filtran.
type HistoryFilter struct {
	Operator  string
	Direction HistoryDirection
	From      time.Time // inclusive, granularidad de día
	To        time.Time // inclusive
}

// FilterHistory aplica el filtro de auditoría sobre el historial, preservando
// el orden más-reciente-primero. No muta el slice recibido.
func FilterHistory(entries []entity.LedgerEntry, f HistoryFilter) []entity.LedgerEntry {
	out := make([]entity.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if f.Operator != "" && e.Person != f.Operator {
			continue
		}
		if f.Direction == DirectionWithdraw && !e.Amount.IsNegative() {
			continue
		}
		if f.Direction == DirectionRefill && !e.Amount.IsPositive() {
			continue
		}
		if !f.From.IsZero() && e.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && e.Date.After(f.To.Add(24*time.Hour-time.Nanosecond)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
