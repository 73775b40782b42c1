package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kit representa un consumible de laboratorio con stock rastreado (set de
// primers, enzima, solución de trabajo).
//
// Contrato de History: orden más-reciente-primero, History[0] es SIEMPRE el
// último asiento aplicado. No es un accidente de inserción: los repositorios
// y el motor de ledger deben preservarlo.
//
// Invariante central: CurrentVolume es reconstruible re-aplicando los Amount
// de todo el historial (la suma de History equivale a CurrentVolume).
type Kit struct {
	ID                string
	Name              string
	Category          string          // clave de CategoryDef
	Description       string
	LinkedProducts    string          // texto libre, productos asociados
	StartVolume       decimal.Decimal // capacidad nominal, solo referencia visual
	CurrentVolume     decimal.Decimal // nivel de stock autoritativo en µl
	CriticalThreshold decimal.Decimal // bajo este valor el kit es crítico
	History           []LedgerEntry
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LastEntry devuelve el asiento más reciente, o nil si el historial está vacío.
func (k *Kit) LastEntry() *LedgerEntry {
	if len(k.History) == 0 {
		return nil
	}
	return &k.History[0]
}

// FindEntry localiza un asiento por ID. Devuelve el índice o -1 si no existe.
func (k *Kit) FindEntry(entryID string) int {
	for i := range k.History {
		if k.History[i].ID == entryID {
			return i
		}
	}
	return -1
}
