package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// KitRepository define el puerto de persistencia para Kit (DIP).
// Los métodos de lectura devuelven el kit con su historial completo cargado
// en orden más-reciente-primero. Get* devuelve (nil, nil) si el ID no existe.
//
// CurrentVolume y History NO se tocan vía UpdateFields: solo cambian a través
// de UpdateVolume y del LedgerEntryRepository, dentro de la transacción que
// abre el TxRunner.
type KitRepository interface {
	Create(kit *entity.Kit) error
	GetByID(id string) (*entity.Kit, error)
	// GetForUpdate bloquea la fila del kit (SELECT FOR UPDATE) para que las
	// mutaciones del ledger sean serializadas por kit.
	GetForUpdate(id string) (*entity.Kit, error)
	List() ([]*entity.Kit, error)
	// UpdateFields persiste solo los campos editables: nombre, categoría,
	// descripción, productos asociados y umbral crítico.
	UpdateFields(kit *entity.Kit) error
	UpdateVolume(id string, volume decimal.Decimal, updatedAt time.Time) error
	Delete(id string) error
}
