package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// ImportRow una fila del import masivo de kits.
type ImportRow struct {
	Name              string
	Category          string
	LinkedProducts    string
	CurrentVolume     decimal.Decimal
	CriticalThreshold decimal.Decimal
}

// ImportUseCase alta masiva de kits: una fila = un Create. Los asientos
// iniciales de kits importados llevan la etiqueta "Übertrag".
type ImportUseCase struct {
	kits *KitUseCase
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(kits *KitUseCase) *ImportUseCase {
	return &ImportUseCase{kits: kits}
}

// ImportCSV parsea el cuerpo CSV y da de alta las filas válidas. Los errores
// de parseo y los de negocio acaban juntos en el resumen.
func (uc *ImportUseCase) ImportCSV(ctx context.Context, data []byte) dto.ImportSummary {
	rows, parseErrs := ParseCSV(data)
	summary := uc.Import(ctx, rows)
	summary.Failed = append(parseErrs, summary.Failed...)
	return summary
}

// Import crea un kit por fila con tolerancia a fallos por fila: una fila
// inválida se reporta y el resto del lote continúa (éxito parcial).
func (uc *ImportUseCase) Import(ctx context.Context, rows []ImportRow) dto.ImportSummary {
	summary := dto.ImportSummary{Failed: []dto.ImportRowError{}}
	for i, row := range rows {
		_, err := uc.kits.Create(ctx, dto.CreateKitRequest{
			Name:              row.Name,
			Category:          row.Category,
			LinkedProducts:    row.LinkedProducts,
			StartVolume:       row.CurrentVolume,
			CriticalThreshold: row.CriticalThreshold,
			SeedComment:       entity.CommentImport,
		})
		if err != nil {
			summary.Failed = append(summary.Failed, dto.ImportRowError{
				Row:     i + 1,
				Name:    row.Name,
				Message: err.Error(),
			})
			continue
		}
		summary.Created++
	}
	return summary
}
