// Package analytics contiene el caso de uso del dashboard: los rollups por
// categoría derivados del conjunto de kits.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

// Umbrales de color del dashboard sobre el % de capacidad promedio.
var (
	redBelow    = decimal.NewFromInt(30)
	yellowBelow = decimal.NewFromInt(70)
	hundred     = decimal.NewFromInt(100)
)

// DashboardUseCase genera las estadísticas por categoría del dashboard.
type DashboardUseCase struct {
	kitRepo      repository.KitRepository
	categoryRepo repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(kitRepo repository.KitRepository, categoryRepo repository.CategoryRepository) *DashboardUseCase {
	return &DashboardUseCase{kitRepo: kitRepo, categoryRepo: categoryRepo}
}

// GetStats carga kits y categorías (las dos consultas en paralelo) y computa
// el rollup por categoría en el orden de definición.
func (uc *DashboardUseCase) GetStats(ctx context.Context) ([]dto.DashboardStatDTO, error) {
	_ = ctx
	type kitsResult struct {
		kits []*entity.Kit
		err  error
	}
	type catsResult struct {
		cats []*entity.CategoryDef
		err  error
	}
	kitsCh := make(chan kitsResult, 1)
	catsCh := make(chan catsResult, 1)

	go func() {
		kits, err := uc.kitRepo.List()
		kitsCh <- kitsResult{kits, err}
	}()
	go func() {
		cats, err := uc.categoryRepo.List()
		catsCh <- catsResult{cats, err}
	}()

	kits := <-kitsCh
	cats := <-catsCh

	if kits.err != nil {
		return nil, fmt.Errorf("dashboard: cargar kits: %w", kits.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard: cargar categorías: %w", cats.err)
	}
	return ComputeDashboardStats(kits.kits, cats.cats), nil
}

// ComputeDashboardStats deriva un DashboardStatDTO por definición de
// categoría, en el orden dado:
//
//	TotalVolume = Σ volumen actual; AvgCapacity = actual/inicial * 100
//	status: red < 30 %, yellow < 70 %, green en el resto.
//
// Las categorías sin kits aparecen igualmente con AvgCapacity 0 y status
// green: es el efecto del guard de división por cero y se preserva tal cual
// por compatibilidad, aunque lea como falsamente "sano".
func ComputeDashboardStats(kits []*entity.Kit, defs []*entity.CategoryDef) []dto.DashboardStatDTO {
	stats := make([]dto.DashboardStatDTO, 0, len(defs))
	for _, def := range defs {
		totalCurrent := decimal.Zero
		totalStart := decimal.Zero
		count := 0
		for _, k := range kits {
			if k.Category != def.Key {
				continue
			}
			totalCurrent = totalCurrent.Add(k.CurrentVolume)
			totalStart = totalStart.Add(k.StartVolume)
			count++
		}

		avg := decimal.Zero
		if totalStart.IsPositive() {
			avg = totalCurrent.Div(totalStart).Mul(hundred)
		}

		status := "green"
		if avg.LessThan(redBelow) {
			status = "red"
		} else if avg.LessThan(yellowBelow) {
			status = "yellow"
		}
		if count == 0 {
			status = "green"
		}

		stats = append(stats, dto.DashboardStatDTO{
			Category:    def.Key,
			Label:       def.Label,
			TotalVolume: totalCurrent,
			AvgCapacity: avg.Round(2),
			Status:      status,
			Count:       count,
		})
	}
	return stats
}
