package kit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	"github.com/cytochromxxx/StockControl/internal/domain/kit"
)

func kitDeVista(id, name, category, linked string, volume, threshold int64) *entity.Kit {
	return &entity.Kit{
		ID: id, Name: name, Category: category, LinkedProducts: linked,
		CurrentVolume: dec(volume), CriticalThreshold: dec(threshold),
	}
}

func inventarioDePrueba() []*entity.Kit {
	return []*entity.Kit{
		kitDeVista("k-3", "Zeta-Kit", "Q", "", 500, 1000),
		kitDeVista("k-1", "Alpha-Kit", "K", "VGM-100", 3000, 1000),
		kitDeVista("k-2", "Beta-Kit", "K", "", 100, 1000),
	}
}

func nombres(kits []*entity.Kit) []string {
	out := make([]string, len(kits))
	for i, k := range kits {
		out[i] = k.Name
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveView_FiltroPorCategoria(t *testing.T) {
	result := kit.DeriveView(inventarioDePrueba(), "K", "", kit.SortByName)

	require.Len(t, result, 2)
	for _, k := range result {
		assert.Equal(t, "K", k.Category)
	}
}

// La búsqueda es por subcadena insensible a mayúsculas sobre nombre, ID y
// productos asociados.
func TestDeriveView_BusquedaInsensibleAMayusculas(t *testing.T) {
	kits := inventarioDePrueba()

	porNombre := kit.DeriveView(kits, "", "alpha", kit.SortByName)
	require.Len(t, porNombre, 1)
	assert.Equal(t, "Alpha-Kit", porNombre[0].Name)

	porProducto := kit.DeriveView(kits, "", "vgm", kit.SortByName)
	require.Len(t, porProducto, 1)
	assert.Equal(t, "Alpha-Kit", porProducto[0].Name)

	porID := kit.DeriveView(kits, "", "k-3", kit.SortByName)
	require.Len(t, porID, 1)
	assert.Equal(t, "Zeta-Kit", porID[0].Name)

	sinResultados := kit.DeriveView(kits, "", "xyz", kit.SortByName)
	assert.Empty(t, sinResultados)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenación
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveView_OrdenPorVolumenDescendente(t *testing.T) {
	result := kit.DeriveView(inventarioDePrueba(), "", "", kit.SortByVolume)

	assert.Equal(t, []string{"Alpha-Kit", "Zeta-Kit", "Beta-Kit"}, nombres(result))
}

// Los empates de volumen preservan el orden previo (orden estable).
func TestDeriveView_OrdenPorVolumenEstableEnEmpates(t *testing.T) {
	kits := []*entity.Kit{
		kitDeVista("k-1", "Primero", "K", "", 500, 100),
		kitDeVista("k-2", "Segundo", "K", "", 500, 100),
		kitDeVista("k-3", "Tercero", "K", "", 900, 100),
	}

	result := kit.DeriveView(kits, "", "", kit.SortByVolume)

	assert.Equal(t, []string{"Tercero", "Primero", "Segundo"}, nombres(result))
}

// Orden por estado: los críticos van primero, el resto preserva su orden.
func TestDeriveView_OrdenPorEstadoCriticosPrimero(t *testing.T) {
	result := kit.DeriveView(inventarioDePrueba(), "", "", kit.SortByStatus)

	// Zeta (500 < 1000) y Beta (100 < 1000) son críticos, en su orden previo.
	assert.Equal(t, []string{"Zeta-Kit", "Beta-Kit", "Alpha-Kit"}, nombres(result))
}

// Sin filtro de categoría, el orden por nombre agrupa primero por categoría y
// ordena alfabéticamente dentro de cada grupo.
func TestDeriveView_OrdenPorNombreAgrupaCategorias(t *testing.T) {
	result := kit.DeriveView(inventarioDePrueba(), "", "", kit.SortByName)

	assert.Equal(t, []string{"Alpha-Kit", "Beta-Kit", "Zeta-Kit"}, nombres(result))
	assert.Equal(t, []string{"K", "K", "Q"}, []string{result[0].Category, result[1].Category, result[2].Category})
}

// Con categoría activa no hay agrupado: alfabético puro dentro de la categoría.
func TestDeriveView_OrdenPorNombreConCategoriaActiva(t *testing.T) {
	result := kit.DeriveView(inventarioDePrueba(), "K", "", kit.SortByName)

	assert.Equal(t, []string{"Alpha-Kit", "Beta-Kit"}, nombres(result))
}

func TestDeriveView_NoMutaElSliceRecibido(t *testing.T) {
	kits := inventarioDePrueba()

	_ = kit.DeriveView(kits, "", "", kit.SortByVolume)

	assert.Equal(t, []string{"Zeta-Kit", "Alpha-Kit", "Beta-Kit"}, nombres(kits))
}

func TestParseSortOption_DesconocidoCaeANombre(t *testing.T) {
	assert.Equal(t, kit.SortByVolume, kit.ParseSortOption("volume"))
	assert.Equal(t, kit.SortByStatus, kit.ParseSortOption("status"))
	assert.Equal(t, kit.SortByName, kit.ParseSortOption(""))
	assert.Equal(t, kit.SortByName, kit.ParseSortOption("cualquier-cosa"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryBoundaries
// ──────────────────────────────────────────────────────────────────────────────

// El índice 0 nunca se marca; se marca cada cambio de categoría.
func TestCategoryBoundaries_MarcaCambiosDeGrupo(t *testing.T) {
	vista := kit.DeriveView(inventarioDePrueba(), "", "", kit.SortByName)

	marks := kit.CategoryBoundaries(vista)

	assert.Equal(t, []bool{false, false, true}, marks)
}

func TestCategoryBoundaries_VistaVacia(t *testing.T) {
	assert.Empty(t, kit.CategoryBoundaries(nil))
}
