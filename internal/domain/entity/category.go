package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryDef representa una categoría de kits (serie K, serie Q, enzimas...).
type CategoryDef struct {
	ID               string
	Key              string          // código corto, ej. "K", "Q", "Bacteria"
	Label            string          // nombre para mostrar, ej. "K-Serien"
	DefaultThreshold decimal.Decimal // umbral sugerido para kits nuevos
	CreatedAt        time.Time
}
