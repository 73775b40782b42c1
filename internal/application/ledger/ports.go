package ledger

import (
	"context"

	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de ledger:
// el llamador observa el kit completamente actualizado o un error, nunca un
// asiento aplicado a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		kitRepo repository.KitRepository,
		entryRepo repository.LedgerEntryRepository,
	) error) error
}
