// Package ledger contiene el caso de uso transaccional del motor de ledger:
// retiros, recargas, correcciones y borrado de asientos, siempre con bloqueo
// de fila (SELECT FOR UPDATE) y Commit/Rollback.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/domain"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

// Ventana por defecto de la serie para graficar (últimos asientos).
const defaultSeriesWindow = 20

// UseCase aplica mutaciones del ledger de forma transaccional y sirve las
// lecturas derivadas (serie temporal, historial filtrado).
type UseCase struct {
	txRunner TxRunner
	kitRepo  repository.KitRepository

	// Inyectables para tests deterministas.
	NewID func() string
	Now   func() time.Time
}

// NewUseCase construye el caso de uso con uuid y reloj reales.
func NewUseCase(txRunner TxRunner, kitRepo repository.KitRepository) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		kitRepo:  kitRepo,
		NewID:    uuid.NewString,
		Now:      time.Now,
	}
}

// RegisterTransaction registra un retiro o recarga sobre el kit indicado.
// amount es la magnitud sin signo (> 0); date en cero significa hoy; comment
// vacío toma la etiqueta manual estándar según el tipo.
//
// Dentro de la transacción: bloquea la fila del kit, aplica el motor de
// dominio (validación incluida), inserta el asiento y persiste el nuevo
// volumen. Ante cualquier error se hace Rollback y el kit queda intacto.
func (uc *UseCase) RegisterTransaction(
	ctx context.Context,
	kitID string,
	amount decimal.Decimal,
	operator string,
	kind kitdom.TransactionKind,
	date time.Time,
	comment string,
) (*entity.Kit, error) {
	if operator == "" {
		return nil, domain.ErrInvalidInput
	}
	if date.IsZero() {
		date = uc.Now()
	}
	if comment == "" {
		if kind == kitdom.KindWithdraw {
			comment = entity.CommentManualWithdraw
		} else {
			comment = entity.CommentManualRefill
		}
	}

	var updated *entity.Kit
	err := uc.txRunner.Run(ctx, func(kits repository.KitRepository, entries repository.LedgerEntryRepository) error {
		k, err := kits.GetForUpdate(kitID)
		if err != nil {
			return err
		}
		if k == nil {
			return domain.ErrNotFound
		}
		entry, err := kitdom.ApplyTransaction(k, kitdom.Transaction{
			EntryID:  uc.NewID(),
			Amount:   amount,
			Operator: operator,
			Kind:     kind,
			Date:     date,
			Comment:  comment,
		})
		if err != nil {
			return err
		}
		if err := entries.Create(k.ID, entry); err != nil {
			return err
		}
		if err := kits.UpdateVolume(k.ID, k.CurrentVolume, uc.Now()); err != nil {
			return err
		}
		updated = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// EditEntryAmount corrige el Amount de un asiento existente. El volumen se
// recalcula a partir del valor viejo leído del asiento almacenado, nunca
// asumido. Sin validación de cotas: las correcciones quedan a criterio del
// operador.
func (uc *UseCase) EditEntryAmount(ctx context.Context, kitID, entryID string, newAmount decimal.Decimal) (*entity.Kit, error) {
	var updated *entity.Kit
	err := uc.txRunner.Run(ctx, func(kits repository.KitRepository, entries repository.LedgerEntryRepository) error {
		k, err := kits.GetForUpdate(kitID)
		if err != nil {
			return err
		}
		if k == nil {
			return domain.ErrNotFound
		}
		if _, err := kitdom.EditEntryAmount(k, entryID, newAmount); err != nil {
			return err
		}
		if err := entries.UpdateAmount(k.ID, entryID, newAmount); err != nil {
			return err
		}
		if err := kits.UpdateVolume(k.ID, k.CurrentVolume, uc.Now()); err != nil {
			return err
		}
		updated = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveEntry elimina un asiento del historial restando su Amount del volumen
// actual, preservando el invariante de replay sobre el historial restante.
func (uc *UseCase) RemoveEntry(ctx context.Context, kitID, entryID string) (*entity.Kit, error) {
	var updated *entity.Kit
	err := uc.txRunner.Run(ctx, func(kits repository.KitRepository, entries repository.LedgerEntryRepository) error {
		k, err := kits.GetForUpdate(kitID)
		if err != nil {
			return err
		}
		if k == nil {
			return domain.ErrNotFound
		}
		if _, err := kitdom.RemoveEntry(k, entryID); err != nil {
			return err
		}
		if err := entries.Delete(k.ID, entryID); err != nil {
			return err
		}
		if err := kits.UpdateVolume(k.ID, k.CurrentVolume, uc.Now()); err != nil {
			return err
		}
		updated = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Series reconstruye la serie temporal de volumen del kit para graficar,
// terminando en el punto "Jetzt". limit <= 0 usa la ventana por defecto.
func (uc *UseCase) Series(ctx context.Context, kitID string, limit int) ([]kitdom.SeriesPoint, error) {
	_ = ctx
	k, err := uc.kitRepo.GetByID(kitID)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = defaultSeriesWindow
	}
	return kitdom.ReconstructSeries(k, limit), nil
}

// History devuelve el historial del kit aplicando el filtro de auditoría
// (operador, dirección, rango de fechas).
func (uc *UseCase) History(ctx context.Context, kitID string, filter kitdom.HistoryFilter) ([]entity.LedgerEntry, error) {
	_ = ctx
	k, err := uc.kitRepo.GetByID(kitID)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}
	return kitdom.FilterHistory(k.History, filter), nil
}
