package repository

import (
	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// LedgerEntryRepository define el puerto de persistencia para los asientos
// del historial de un kit (DIP).
//
// ListByKit devuelve los asientos en orden más-reciente-primero (el contrato
// de Kit.History); el adaptador es responsable de materializar ese orden,
// no el orden de inserción accidental.
type LedgerEntryRepository interface {
	Create(kitID string, entry *entity.LedgerEntry) error
	UpdateAmount(kitID, entryID string, amount decimal.Decimal) error
	Delete(kitID, entryID string) error
	ListByKit(kitID string) ([]entity.LedgerEntry, error)
}
