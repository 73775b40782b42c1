package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytochromxxx/StockControl/internal/application/usecase"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// El import es tolerante por fila: las inválidas se reportan y el resto del
// lote se crea igualmente.
func TestImport_ExitoParcial(t *testing.T) {
	repo := newMemKitRepo()
	uc := usecase.NewImportUseCase(kitUsecaseDePrueba(repo))

	summary := uc.Import(context.Background(), []usecase.ImportRow{
		{Name: "K1 Standard", Category: "K", CurrentVolume: dec(5000), CriticalThreshold: dec(2000)},
		{Name: "Fantasma", Category: "Desconocida", CurrentVolume: dec(100)},
		{Name: "Taq", Category: "Enzyme", CurrentVolume: dec(800)},
	})

	assert.Equal(t, 2, summary.Created)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, 2, summary.Failed[0].Row)
	assert.Equal(t, "Fantasma", summary.Failed[0].Name)
	assert.Len(t, repo.kits, 2)
}

// Los kits importados llevan la etiqueta "Übertrag" en su asiento inicial, no
// "Ersteinrichtung".
func TestImport_AsientoInicialConEtiquetaDeImport(t *testing.T) {
	repo := newMemKitRepo()
	uc := usecase.NewImportUseCase(kitUsecaseDePrueba(repo))

	uc.Import(context.Background(), []usecase.ImportRow{
		{Name: "K1", Category: "K", CurrentVolume: dec(5000)},
	})

	require.Len(t, repo.kits, 1)
	for _, k := range repo.kits {
		require.Len(t, k.History, 1)
		assert.Equal(t, entity.CommentImport, k.History[0].Comment)
		assert.True(t, k.StartVolume.Equal(dec(5000)), "el volumen importado pasa a ser el inicial")
	}
}

func TestImportCSV_ParseaYCrea(t *testing.T) {
	repo := newMemKitRepo()
	uc := usecase.NewImportUseCase(kitUsecaseDePrueba(repo))

	csv := "Name,Kategorie,Verknüpfte Produkte,Aktuelles Volumen (µl),Kritischer Wert (µl),Status\n" +
		"K1 Standard,K,VGM-100,5000,2000,OK\n" +
		"Taq,Enzyme,,\"800,5\",1000,Niedrig\n"

	summary := uc.ImportCSV(context.Background(), []byte(csv))

	assert.Equal(t, 2, summary.Created)
	assert.Empty(t, summary.Failed)
}

func TestParseCSV_FilasInvalidasNoAbortan(t *testing.T) {
	csv := "K1,K,,5000,2000\n" +
		"Rota,K,,no-es-numero,2000\n" +
		"K2,K,,300,100\n"

	rows, failed := usecase.ParseCSV([]byte(csv))

	require.Len(t, rows, 2)
	assert.Equal(t, "K1", rows[0].Name)
	assert.Equal(t, "K2", rows[1].Name)
	require.Len(t, failed, 1)
	assert.Equal(t, 2, failed[0].Row)
	assert.Equal(t, "Rota", failed[0].Name)
}

func TestParseCSV_BOMYCabeceraOpcionales(t *testing.T) {
	conBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Name,Kategorie,Produkte,Volumen,Wert\nK1,K,,100,50\n")...)

	rows, failed := usecase.ParseCSV(conBOM)

	require.Len(t, rows, 1)
	assert.Empty(t, failed)
	assert.Equal(t, "K1", rows[0].Name)
	assert.True(t, rows[0].CurrentVolume.Equal(dec(100)))
}

func TestParseCSV_ComaDecimalAlemana(t *testing.T) {
	rows, failed := usecase.ParseCSV([]byte("K1,K,,\"1234,5\",\"100,25\"\n"))

	require.Len(t, rows, 1)
	require.Empty(t, failed)
	assert.Equal(t, "1234.5", rows[0].CurrentVolume.String())
	assert.Equal(t, "100.25", rows[0].CriticalThreshold.String())
}
