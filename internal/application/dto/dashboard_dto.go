package dto

import "github.com/shopspring/decimal"

// DashboardStatDTO resumen de una categoría para el dashboard, en el orden
// de definición de las categorías.
type DashboardStatDTO struct {
	Category    string          `json:"category"`
	Label       string          `json:"label"`
	TotalVolume decimal.Decimal `json:"total_volume"`  // suma de volúmenes actuales
	AvgCapacity decimal.Decimal `json:"avg_capacity"`  // % = actual/inicial * 100
	Status      string          `json:"status"`        // green | yellow | red
	Count       int             `json:"count"`
}
