package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/application/ledger"
	"github.com/cytochromxxx/StockControl/internal/domain"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

// KitUseCase ciclo de vida de los kits: alta con asiento inicial, edición de
// campos no contables, baja definitiva y derivación de vistas. El volumen y
// el historial solo cambian vía el caso de uso del ledger.
type KitUseCase struct {
	txRunner     ledger.TxRunner
	kitRepo      repository.KitRepository
	categoryRepo repository.CategoryRepository

	// Inyectables para tests deterministas.
	NewID func() string
	Now   func() time.Time
}

// NewKitUseCase construye el caso de uso.
func NewKitUseCase(txRunner ledger.TxRunner, kitRepo repository.KitRepository, categoryRepo repository.CategoryRepository) *KitUseCase {
	return &KitUseCase{
		txRunner:     txRunner,
		kitRepo:      kitRepo,
		categoryRepo: categoryRepo,
		NewID:        uuid.NewString,
		Now:          time.Now,
	}
}

// Create da de alta un kit sembrando exactamente un asiento inicial
// (amount = volumen inicial, operador "System", etiqueta "Ersteinrichtung")
// con fecha de hoy, de modo que el invariante de replay se cumple desde el
// primer momento. Umbral en cero toma el por defecto de la categoría.
func (uc *KitUseCase) Create(ctx context.Context, in dto.CreateKitRequest) (*entity.Kit, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StartVolume.IsNegative() || in.CriticalThreshold.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByKey(in.Category)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrInvalidInput
	}
	threshold := in.CriticalThreshold
	if threshold.IsZero() {
		threshold = cat.DefaultThreshold
	}
	seedComment := in.SeedComment
	if seedComment == "" {
		seedComment = entity.CommentInitialStock
	}

	now := uc.Now()
	seed := entity.LedgerEntry{
		ID:      uc.NewID(),
		Date:    now,
		Amount:  in.StartVolume,
		Person:  entity.SystemOperator,
		Comment: seedComment,
	}
	k := &entity.Kit{
		ID:                uc.NewID(),
		Name:              strings.TrimSpace(in.Name),
		Category:          cat.Key,
		Description:       in.Description,
		LinkedProducts:    in.LinkedProducts,
		StartVolume:       in.StartVolume,
		CurrentVolume:     in.StartVolume,
		CriticalThreshold: threshold,
		History:           []entity.LedgerEntry{seed},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Kit y asiento inicial en la misma transacción.
	err = uc.txRunner.Run(ctx, func(kits repository.KitRepository, entries repository.LedgerEntryRepository) error {
		if err := kits.Create(k); err != nil {
			return err
		}
		return entries.Create(k.ID, &seed)
	})
	if err != nil {
		return nil, err
	}
	return k, nil
}

// GetByID obtiene un kit con su historial completo.
func (uc *KitUseCase) GetByID(ctx context.Context, id string) (*entity.Kit, error) {
	_ = ctx
	k, err := uc.kitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}
	return k, nil
}

// UpdateFields fusiona los campos editables presentes en la petición. El
// volumen, el historial y el ID no son alcanzables por esta vía: el DTO los
// excluye a nivel de tipo.
func (uc *KitUseCase) UpdateFields(ctx context.Context, id string, in dto.UpdateKitRequest) (*entity.Kit, error) {
	_ = ctx
	k, err := uc.kitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		k.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		cat, err := uc.categoryRepo.GetByKey(*in.Category)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrInvalidInput
		}
		k.Category = cat.Key
	}
	if in.Description != nil {
		k.Description = *in.Description
	}
	if in.LinkedProducts != nil {
		k.LinkedProducts = *in.LinkedProducts
	}
	if in.CriticalThreshold != nil {
		if in.CriticalThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		k.CriticalThreshold = *in.CriticalThreshold
	}
	k.UpdatedAt = uc.Now()

	if err := uc.kitRepo.UpdateFields(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Remove elimina el kit y todo su historial de forma definitiva: sin
// soft-delete ni tombstone, la operación es irreversible.
func (uc *KitUseCase) Remove(ctx context.Context, id string) error {
	_ = ctx
	return uc.kitRepo.Delete(id)
}

// View deriva la vista de inventario: filtro por categoría y búsqueda, más
// la ordenación pedida (estable).
func (uc *KitUseCase) View(ctx context.Context, activeCategory, query string, sortBy kitdom.SortOption) ([]*entity.Kit, error) {
	_ = ctx
	kits, err := uc.kitRepo.List()
	if err != nil {
		return nil, err
	}
	return kitdom.DeriveView(kits, activeCategory, query, sortBy), nil
}
