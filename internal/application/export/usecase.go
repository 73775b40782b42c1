// Package export serializa el inventario a CSV, XLSX y PDF. El CSV es el
// formato de intercambio (el mismo layout de columnas que acepta el import);
// XLSX y PDF son formatos de solo lectura para reportes.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

// csvHeader columnas del CSV de intercambio, en el orden del import.
var csvHeader = []string{
	"Name",
	"Kategorie",
	"Verknüpfte Produkte",
	"Aktuelles Volumen (µl)",
	"Kritischer Wert (µl)",
	"Status",
}

// utf8BOM hace que Excel abra el CSV como UTF-8 en vez de Latin-1.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// UseCase exporta el inventario completo a los tres formatos soportados.
type UseCase struct {
	kitRepo repository.KitRepository
	pdfGen  StockReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(kitRepo repository.KitRepository, pdfGen StockReportGenerator) *UseCase {
	return &UseCase{kitRepo: kitRepo, pdfGen: pdfGen}
}

// ViewParams criterios de la vista a exportar; en cero exporta el inventario
// completo en su orden agrupado.
type ViewParams struct {
	Category string
	Query    string
	SortBy   kitdom.SortOption
}

func (uc *UseCase) view(p ViewParams) ([]*entity.Kit, error) {
	kits, err := uc.kitRepo.List()
	if err != nil {
		return nil, err
	}
	return kitdom.DeriveView(kits, p.Category, p.Query, p.SortBy), nil
}

// CSV serializa la vista a CSV con BOM UTF-8.
func (uc *UseCase) CSV(ctx context.Context, p ViewParams) ([]byte, error) {
	_ = ctx
	kits, err := uc.view(p)
	if err != nil {
		return nil, err
	}
	return WriteCSV(kits)
}

// XLSX serializa la vista a un libro Excel de una hoja.
func (uc *UseCase) XLSX(ctx context.Context, p ViewParams) ([]byte, error) {
	_ = ctx
	kits, err := uc.view(p)
	if err != nil {
		return nil, err
	}
	return BuildXLSX(kits)
}

// PDF genera el informe de stock de la vista vía el generador inyectado.
func (uc *UseCase) PDF(ctx context.Context, p ViewParams) ([]byte, error) {
	kits, err := uc.view(p)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockReport(ctx, kits)
}

// WriteCSV escribe los kits en CSV. encoding/csv se encarga del quoting de
// comas, comillas y saltos de línea en los campos libres.
func WriteCSV(kits []*entity.Kit) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("export: cabecera CSV: %w", err)
	}
	for _, k := range kits {
		record := []string{
			k.Name,
			k.Category,
			k.LinkedProducts,
			k.CurrentVolume.String(),
			k.CriticalThreshold.String(),
			kitdom.StatusText(kitdom.ComputeStatus(k.CurrentVolume, k.CriticalThreshold)),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: fila CSV %q: %w", k.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildXLSX construye un libro con la hoja "Bestand": cabecera en negrita y
// una fila por kit.
func BuildXLSX(kits []*entity.Kit) ([]byte, error) {
	const sheet = "Bestand"

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: estilo de cabecera: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: cabecera XLSX: %w", err)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(csvHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return nil, fmt.Errorf("export: aplicar estilo: %w", err)
	}

	for i, k := range kits {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export: celda fila %d: %w", i+2, err)
		}
		cur, _ := k.CurrentVolume.Float64()
		thr, _ := k.CriticalThreshold.Float64()
		row := []interface{}{
			k.Name,
			k.Category,
			k.LinkedProducts,
			cur,
			thr,
			kitdom.StatusText(kitdom.ComputeStatus(k.CurrentVolume, k.CriticalThreshold)),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export: fila XLSX %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
