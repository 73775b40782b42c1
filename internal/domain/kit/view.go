package kit

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// SortOption criterio de ordenación de la vista de inventario.
type SortOption string

const (
	SortByName   SortOption = "name"
	SortByVolume SortOption = "volume"
	SortByStatus SortOption = "status"
)

// ParseSortOption normaliza el criterio recibido; valores desconocidos o
// vacíos caen al orden por nombre.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortByVolume:
		return SortByVolume
	case SortByStatus:
		return SortByStatus
	default:
		return SortByName
	}
}

// DeriveView filtra y ordena el conjunto de kits según los criterios del
// usuario. No muta el slice recibido; devuelve uno nuevo.
//
// Filtro: categoría activa (vacía = todas) y búsqueda por subcadena
// insensible a mayúsculas sobre nombre, ID y productos asociados.
//
// Orden (siempre estable, los empates preservan el orden previo):
//   - name:   alfabético con colación alemana. Sin filtro de categoría se
//     antepone un agrupado por categoría, de modo que el listado completo
//     sale agrupado y alfabético dentro de cada grupo.
//   - volume: volumen actual descendente.
//   - status: críticos primero (volumen bajo umbral antes que el resto).
func DeriveView(kits []*entity.Kit, activeCategory, query string, sortBy SortOption) []*entity.Kit {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]*entity.Kit, 0, len(kits))
	for _, k := range kits {
		if activeCategory != "" && k.Category != activeCategory {
			continue
		}
		if q != "" && !matchesQuery(k, q) {
			continue
		}
		result = append(result, k)
	}

	switch sortBy {
	case SortByVolume:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CurrentVolume.GreaterThan(result[j].CurrentVolume)
		})
	case SortByStatus:
		sort.SliceStable(result, func(i, j int) bool {
			return isCritical(result[i]) && !isCritical(result[j])
		})
	default:
		c := collate.New(language.German)
		grouped := activeCategory == ""
		sort.SliceStable(result, func(i, j int) bool {
			if grouped {
				if cmp := c.CompareString(result[i].Category, result[j].Category); cmp != 0 {
					return cmp < 0
				}
			}
			return c.CompareString(result[i].Name, result[j].Name) < 0
		})
	}
	return result
}

func matchesQuery(k *entity.Kit, q string) bool {
	return strings.Contains(strings.ToLower(k.Name), q) ||
		strings.Contains(strings.ToLower(k.ID), q) ||
		strings.Contains(strings.ToLower(k.LinkedProducts), q)
}

func isCritical(k *entity.Kit) bool {
	return ComputeStatus(k.CurrentVolume, k.CriticalThreshold) == StatusCritical
}

// CategoryBoundaries marca el primer kit de cada categoría nueva al iterar
// una vista agrupada por categoría. El índice 0 nunca se marca: el marcador
// existe solo para pintar un separador visual entre grupos, no forma parte
// del modelo de datos.
func CategoryBoundaries(kits []*entity.Kit) []bool {
	marks := make([]bool, len(kits))
	for i := 1; i < len(kits); i++ {
		marks[i] = kits[i].Category != kits[i-1].Category
	}
	return marks
}
