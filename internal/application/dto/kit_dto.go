package dto

import "github.com/shopspring/decimal"

// CreateKitRequest body para POST /api/kits.
// El volumen inicial se registra como asiento "Ersteinrichtung"; si el umbral
// viene en cero se toma el umbral por defecto de la categoría.
type CreateKitRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description,omitempty"`
	LinkedProducts    string          `json:"linked_products,omitempty"`
	StartVolume       decimal.Decimal `json:"start_volume"`
	CriticalThreshold decimal.Decimal `json:"critical_threshold"`
	SeedComment       string          `json:"-"` // interno: etiqueta del asiento inicial (importaciones)
}

// UpdateKitRequest body para PUT /api/kits/:id. Solo campos editables:
// volumen e historial quedan excluidos a nivel de tipo y solo cambian vía
// las operaciones del ledger.
type UpdateKitRequest struct {
	Name              *string          `json:"name,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Description       *string          `json:"description,omitempty"`
	LinkedProducts    *string          `json:"linked_products,omitempty"`
	CriticalThreshold *decimal.Decimal `json:"critical_threshold,omitempty"`
}

// TransactionRequest body para POST /api/kits/:id/withdrawals y /refills.
// Amount es la magnitud sin signo; el signo lo deriva el motor del ledger.
// Date acepta DD.MM.YYYY o YYYY-MM-DD; vacía = hoy.
type TransactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Operator string          `json:"operator"`
	Date     string          `json:"date,omitempty"`
	Comment  string          `json:"comment,omitempty"`
}

// EditEntryRequest body para PUT /api/kits/:id/entries/:entryId.
type EditEntryRequest struct {
	NewAmount decimal.Decimal `json:"new_amount"`
}

// LedgerEntryResponse un asiento del historial en respuestas.
type LedgerEntryResponse struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"` // DD.MM.YYYY
	Amount  decimal.Decimal `json:"amount"`
	Person  string          `json:"person"`
	Comment string          `json:"comment"`
}

// KitResponse representación completa de un kit, historial incluido
// (más-reciente-primero).
type KitResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Category          string                `json:"category"`
	Description       string                `json:"description"`
	LinkedProducts    string                `json:"linked_products"`
	StartVolume       decimal.Decimal       `json:"start_volume"`
	CurrentVolume     decimal.Decimal       `json:"current_volume"`
	CriticalThreshold decimal.Decimal       `json:"critical_threshold"`
	Status            string                `json:"status"` // ok | warning | critical
	VisualFillPercent float64               `json:"visual_fill_percent"`
	History           []LedgerEntryResponse `json:"history"`
}

// KitListItem elemento de la vista de inventario; marca además el primer kit
// de cada categoría nueva en la vista agrupada (separador visual).
type KitListItem struct {
	KitResponse
	CategoryBoundary bool `json:"category_boundary"`
}

// SeriesPointResponse un punto (etiqueta, volumen) de la serie para graficar.
type SeriesPointResponse struct {
	Label  string          `json:"label"`
	Volume decimal.Decimal `json:"volume"`
}

// CategoryResponse una categoría de kits.
type CategoryResponse struct {
	Key              string          `json:"key"`
	Label            string          `json:"label"`
	DefaultThreshold decimal.Decimal `json:"default_threshold"`
}
