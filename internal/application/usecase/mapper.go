package usecase

import (
	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
)

// ToKitResponse mapea la entidad al DTO de respuesta, con estado y porcentaje
// visual ya derivados.
func ToKitResponse(k *entity.Kit) dto.KitResponse {
	history := make([]dto.LedgerEntryResponse, len(k.History))
	for i, e := range k.History {
		history[i] = ToLedgerEntryResponse(e)
	}
	return dto.KitResponse{
		ID:                k.ID,
		Name:              k.Name,
		Category:          k.Category,
		Description:       k.Description,
		LinkedProducts:    k.LinkedProducts,
		StartVolume:       k.StartVolume,
		CurrentVolume:     k.CurrentVolume,
		CriticalThreshold: k.CriticalThreshold,
		Status:            string(kitdom.ComputeStatus(k.CurrentVolume, k.CriticalThreshold)),
		VisualFillPercent: kitdom.VisualFillPercent(k.CurrentVolume, k.CriticalThreshold),
		History:           history,
	}
}

// ToLedgerEntryResponse mapea un asiento al DTO de respuesta.
func ToLedgerEntryResponse(e entity.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:      e.ID,
		Date:    kitdom.FormatDate(e.Date),
		Amount:  e.Amount,
		Person:  e.Person,
		Comment: e.Comment,
	}
}

// ToKitListItems mapea la vista ordenada marcando los separadores de
// categoría (solo tiene sentido sobre la vista agrupada sin filtro).
func ToKitListItems(kits []*entity.Kit) []dto.KitListItem {
	marks := kitdom.CategoryBoundaries(kits)
	items := make([]dto.KitListItem, len(kits))
	for i, k := range kits {
		items[i] = dto.KitListItem{KitResponse: ToKitResponse(k), CategoryBoundary: marks[i]}
	}
	return items
}

// ToCategoryResponse mapea una categoría al DTO de respuesta.
func ToCategoryResponse(c *entity.CategoryDef) dto.CategoryResponse {
	return dto.CategoryResponse{
		Key:              c.Key,
		Label:            c.Label,
		DefaultThreshold: c.DefaultThreshold,
	}
}
