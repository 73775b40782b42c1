// Package kit contiene los servicios de dominio puros del inventario de
// laboratorio: el motor de ledger (volumen derivado del historial), la
// clasificación de estado y la derivación de vistas ordenadas/filtradas.
package kit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/domain"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// TransactionKind distingue retiros de recargas. El llamador entrega siempre
// la magnitud sin signo; el signo lo deriva el motor según el tipo.
type TransactionKind string

const (
	KindWithdraw TransactionKind = "withdraw"
	KindRefill   TransactionKind = "refill"
)

// Transaction entrada para ApplyTransaction.
type Transaction struct {
	EntryID  string          // ID del nuevo asiento (lo genera el caso de uso)
	Amount   decimal.Decimal // magnitud sin signo, > 0
	Operator string
	Kind     TransactionKind
	Date     time.Time
	Comment  string
}

// ApplyTransaction aplica un retiro o recarga sobre el kit: valida, antepone
// el asiento al historial y ajusta CurrentVolume. La operación es atómica
// sobre el kit en memoria: valida todo antes de mutar, de modo que ante error
// el kit queda intacto (ni asiento nuevo ni cambio de volumen).
//
// Retiros: delta = -Amount; falla con ErrInsufficientVolume si dejaría el
// volumen negativo. Recargas: delta = +Amount, sin tope superior (sobrellenar
// por encima de StartVolume es legítimo).
func ApplyTransaction(k *entity.Kit, in Transaction) (*entity.LedgerEntry, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var delta decimal.Decimal
	switch in.Kind {
	case KindWithdraw:
		delta = in.Amount.Neg()
		if k.CurrentVolume.Add(delta).IsNegative() {
			return nil, domain.ErrInsufficientVolume
		}
	case KindRefill:
		delta = in.Amount
	default:
		return nil, domain.ErrInvalidInput
	}

	entry := entity.LedgerEntry{
		ID:      in.EntryID,
		Date:    in.Date,
		Amount:  delta,
		Person:  in.Operator,
		Comment: in.Comment,
	}
	// Más-reciente-primero: el asiento nuevo siempre va en History[0].
	k.History = append([]entity.LedgerEntry{entry}, k.History...)
	k.CurrentVolume = k.CurrentVolume.Add(delta)
	return &k.History[0], nil
}

// EditEntryAmount reemplaza el Amount de un asiento existente y recalcula el
// volumen como CurrentVolume - viejo + nuevo. El valor viejo se lee SIEMPRE
// del asiento almacenado, nunca se asume. No hay validación de cotas: una
// corrección puede acercar el volumen a negativo o superar StartVolume; eso
// queda bajo criterio del operador.
// Devuelve el Amount anterior para auditoría.
func EditEntryAmount(k *entity.Kit, entryID string, newAmount decimal.Decimal) (decimal.Decimal, error) {
	idx := k.FindEntry(entryID)
	if idx < 0 {
		return decimal.Zero, domain.ErrEntryNotFound
	}
	old := k.History[idx].Amount
	k.History[idx].Amount = newAmount
	k.CurrentVolume = k.CurrentVolume.Sub(old).Add(newAmount)
	return old, nil
}

// RemoveEntry elimina un asiento del historial restando su Amount del volumen
// actual, de modo que el volumen siga siendo el replay del historial restante.
// Devuelve el asiento eliminado.
func RemoveEntry(k *entity.Kit, entryID string) (entity.LedgerEntry, error) {
	idx := k.FindEntry(entryID)
	if idx < 0 {
		return entity.LedgerEntry{}, domain.ErrEntryNotFound
	}
	removed := k.History[idx]
	k.CurrentVolume = k.CurrentVolume.Sub(removed.Amount)
	k.History = append(k.History[:idx], k.History[idx+1:]...)
	return removed, nil
}

// Replay suma los Amount de todo el historial. Por el invariante central del
// sistema debe coincidir con CurrentVolume; se usa en verificaciones de
// consistencia y tests.
func Replay(k *entity.Kit) decimal.Decimal {
	sum := decimal.Zero
	for i := range k.History {
		sum = sum.Add(k.History[i].Amount)
	}
	return sum
}

// SeriesPoint un punto (etiqueta, volumen) de la serie temporal para graficar.
type SeriesPoint struct {
	Label  string
	Volume decimal.Decimal
}

// NowLabel etiqueta del punto actual de la serie.
const NowLabel = "Jetzt"

// ReconstructSeries reconstruye el volumen en el tiempo para los últimos
// limit asientos, del más antiguo al más reciente y terminando en el punto
// "Jetzt" con el volumen actual. Parte de CurrentVolume y camina el historial
// (más-reciente-primero) restando cada Amount para obtener el volumen previo
// a ese asiento: invierte la acumulación sin segunda pasada ni copia del
// historial completo.
func ReconstructSeries(k *entity.Kit, limit int) []SeriesPoint {
	n := len(k.History)
	if limit > 0 && limit < n {
		n = limit
	}
	points := make([]SeriesPoint, n+1)
	running := k.CurrentVolume
	points[n] = SeriesPoint{Label: NowLabel, Volume: running}
	for i := 0; i < n; i++ {
		running = running.Sub(k.History[i].Amount)
		points[n-1-i] = SeriesPoint{Label: FormatDate(k.History[i].Date), Volume: running}
	}
	return points
}
