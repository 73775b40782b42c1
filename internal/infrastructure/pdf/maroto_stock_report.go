// Package pdf implementa el informe de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Name | Kategorie | Volumen | Kritischer Wert | Status│
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales por estado                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarning  = &props.Color{Red: 190, Green: 140, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReport implementa export.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	// Now inyectable para tests deterministas.
	Now func() time.Time
}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport {
	return &MarotoStockReport{Now: time.Now}
}

// GenerateStockReport genera el informe y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, kits []*entity.Kit) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bestandsbericht", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.Now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableKitRows(kits) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(kits))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Bestandsbericht", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reagenzien-Kits", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Stand: "+now.Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de kits.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Name", 4, align.Left),
		h("Kategorie", 2, align.Left),
		h("Volumen (µl)", 2, align.Right),
		h("Krit. Wert (µl)", 2, align.Right),
		h("Status", 2, align.Center),
	)
}

// tableKitRows: una fila por kit, con el status coloreado según gravedad.
func tableKitRows(kits []*entity.Kit) []core.Row {
	result := make([]core.Row, 0, len(kits))
	for _, k := range kits {
		status := kitdom.ComputeStatus(k.CurrentVolume, k.CriticalThreshold)
		statusColor := colorGray
		switch status {
		case kitdom.StatusCritical:
			statusColor = colorCritical
		case kitdom.StatusWarning:
			statusColor = colorWarning
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				k.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				k.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				k.CurrentVolume.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				k.CriticalThreshold.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				kitdom.StatusText(status),
				props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: statusColor},
			)),
		))
	}
	return result
}

// summaryRow: conteo de kits por estado al pie del informe.
func summaryRow(kits []*entity.Kit) core.Row {
	var critical, warning, ok int
	for _, k := range kits {
		switch kitdom.ComputeStatus(k.CurrentVolume, k.CriticalThreshold) {
		case kitdom.StatusCritical:
			critical++
		case kitdom.StatusWarning:
			warning++
		default:
			ok++
		}
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Gesamt: %d Kits   |   Kritisch: %d   |   Niedrig: %d   |   OK: %d",
				len(kits), critical, warning, ok,
			), props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}
