package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytochromxxx/StockControl/internal/application/analytics"
	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/application/ledger"
	"github.com/cytochromxxx/StockControl/internal/application/usecase"
	"github.com/cytochromxxx/StockControl/internal/domain"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
	apphttp "github.com/cytochromxxx/StockControl/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memKitRepo struct{ kits map[string]*entity.Kit }

func (r *memKitRepo) Create(k *entity.Kit) error {
	if _, ok := r.kits[k.ID]; ok {
		return domain.ErrDuplicate
	}
	r.kits[k.ID] = k
	return nil
}
func (r *memKitRepo) GetByID(id string) (*entity.Kit, error) {
	k, ok := r.kits[id]
	if !ok {
		return nil, nil
	}
	copia := *k
	copia.History = append([]entity.LedgerEntry{}, k.History...)
	return &copia, nil
}
func (r *memKitRepo) GetForUpdate(id string) (*entity.Kit, error) { return r.GetByID(id) }
func (r *memKitRepo) List() ([]*entity.Kit, error) {
	var out []*entity.Kit
	for id := range r.kits {
		k, _ := r.GetByID(id)
		out = append(out, k)
	}
	return out, nil
}
func (r *memKitRepo) UpdateFields(k *entity.Kit) error {
	stored, ok := r.kits[k.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = k.Name
	stored.Category = k.Category
	stored.Description = k.Description
	stored.LinkedProducts = k.LinkedProducts
	stored.CriticalThreshold = k.CriticalThreshold
	return nil
}
func (r *memKitRepo) UpdateVolume(id string, volume decimal.Decimal, updatedAt time.Time) error {
	stored, ok := r.kits[id]
	if !ok {
		return domain.ErrNotFound
	}
	stored.CurrentVolume = volume
	return nil
}
func (r *memKitRepo) Delete(id string) error {
	if _, ok := r.kits[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.kits, id)
	return nil
}

type memEntryRepo struct{ r *memKitRepo }

func (e *memEntryRepo) Create(kitID string, entry *entity.LedgerEntry) error {
	k, ok := e.r.kits[kitID]
	if !ok {
		return domain.ErrNotFound
	}
	k.History = append([]entity.LedgerEntry{*entry}, k.History...)
	return nil
}
func (e *memEntryRepo) UpdateAmount(kitID, entryID string, amount decimal.Decimal) error {
	k, ok := e.r.kits[kitID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	idx := k.FindEntry(entryID)
	if idx < 0 {
		return domain.ErrEntryNotFound
	}
	k.History[idx].Amount = amount
	return nil
}
func (e *memEntryRepo) Delete(kitID, entryID string) error {
	k, ok := e.r.kits[kitID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	idx := k.FindEntry(entryID)
	if idx < 0 {
		return domain.ErrEntryNotFound
	}
	k.History = append(k.History[:idx], k.History[idx+1:]...)
	return nil
}
func (e *memEntryRepo) ListByKit(kitID string) ([]entity.LedgerEntry, error) { return nil, nil }

type memTxRunner struct{ r *memKitRepo }

func (t *memTxRunner) Run(_ context.Context, fn func(repository.KitRepository, repository.LedgerEntryRepository) error) error {
	return fn(t.r, &memEntryRepo{r: t.r})
}

type memCategoryRepo struct{ cats []*entity.CategoryDef }

func (r *memCategoryRepo) List() ([]*entity.CategoryDef, error) { return r.cats, nil }
func (r *memCategoryRepo) GetByKey(key string) (*entity.CategoryDef, error) {
	for _, c := range r.cats {
		if c.Key == key {
			return c, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// buildTestApp monta la API completa sobre repos en memoria.
func buildTestApp() (*fiber.App, *memKitRepo) {
	repo := &memKitRepo{kits: map[string]*entity.Kit{}}
	catRepo := &memCategoryRepo{cats: []*entity.CategoryDef{
		{Key: "K", Label: "K-Kits", DefaultThreshold: dec(2000)},
		{Key: "Enzyme", Label: "Enzyme", DefaultThreshold: dec(1000)},
	}}
	txRunner := &memTxRunner{r: repo}

	kitUC := usecase.NewKitUseCase(txRunner, repo, catRepo)
	ledgerUC := ledger.NewUseCase(txRunner, repo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		KitUC:       kitUC,
		CategoryUC:  usecase.NewCategoryUseCase(catRepo),
		ImportUC:    usecase.NewImportUseCase(kitUC),
		LedgerUC:    ledgerUC,
		DashboardUC: analytics.NewDashboardUseCase(repo, catRepo),
	})
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeKit(t *testing.T, resp *http.Response) dto.KitResponse {
	t.Helper()
	var out dto.KitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Alta por HTTP: 201 con el asiento inicial sembrado y el estado derivado.
func TestPostKits_CreaConAsientoInicial(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{
		Name:        "K1 Standard",
		Category:    "K",
		StartVolume: dec(11000),
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeKit(t, resp)
	assert.Equal(t, "ok", out.Status)
	require.Len(t, out.History, 1)
	assert.Equal(t, entity.CommentInitialStock, out.History[0].Comment)
	assert.True(t, out.CriticalThreshold.Equal(dec(2000)), "umbral por defecto de la categoría")
}

func TestPostKits_CategoriaInvalida(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{
		Name: "X", Category: "Desconocida", StartVolume: dec(10),
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetKit_Inexistente(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/kits/no-existe", nil)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

// Retiro por HTTP: actualiza volumen y estado; el insuficiente devuelve 409.
func TestPostWithdrawals_FlujoCompleto(t *testing.T) {
	app, _ := buildTestApp()
	created := decodeKit(t, doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{
		Name: "K1", Category: "K", StartVolume: dec(3000),
	}))

	resp := doJSON(t, app, http.MethodPost, "/api/kits/"+created.ID+"/withdrawals", dto.TransactionRequest{
		Amount: dec(1500), Operator: "MK", Date: "21.10.2025",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeKit(t, resp)
	assert.True(t, out.CurrentVolume.Equal(dec(1500)))
	assert.Equal(t, "critical", out.Status, "1500 < umbral 2000")
	assert.Equal(t, "21.10.2025", out.History[0].Date)

	resp = doJSON(t, app, http.MethodPost, "/api/kits/"+created.ID+"/withdrawals", dto.TransactionRequest{
		Amount: dec(99999), Operator: "MK",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPutEntries_CorrigeAsiento(t *testing.T) {
	app, repo := buildTestApp()
	created := decodeKit(t, doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{
		Name: "K1", Category: "K", StartVolume: dec(3000),
	}))
	withdrawn := decodeKit(t, doJSON(t, app, http.MethodPost, "/api/kits/"+created.ID+"/withdrawals", dto.TransactionRequest{
		Amount: dec(500), Operator: "MK",
	}))
	entryID := withdrawn.History[0].ID

	resp := doJSON(t, app, http.MethodPut, "/api/kits/"+created.ID+"/entries/"+entryID, dto.EditEntryRequest{
		NewAmount: dec(-800),
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeKit(t, resp)
	assert.True(t, out.CurrentVolume.Equal(dec(2200)))
	assert.True(t, repo.kits[created.ID].CurrentVolume.Equal(dec(2200)))
}

func TestGetDashboard_RollupPorCategoria(t *testing.T) {
	app, _ := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{
		Name: "K1", Category: "K", StartVolume: dec(10000),
	})

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats []dto.DashboardStatDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.Len(t, stats, 2)
	assert.Equal(t, "K", stats[0].Category)
	assert.Equal(t, "green", stats[0].Status, "recién creado está al 100 %")
	assert.Equal(t, "green", stats[1].Status, "categoría vacía sale green")
}

func TestGetKits_VistaAgrupadaConSeparadores(t *testing.T) {
	app, _ := buildTestApp()
	doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{Name: "Zeta", Category: "K", StartVolume: dec(100)})
	doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{Name: "Alpha", Category: "K", StartVolume: dec(100)})
	doJSON(t, app, http.MethodPost, "/api/kits", dto.CreateKitRequest{Name: "Taq", Category: "Enzyme", StartVolume: dec(100)})

	resp := doJSON(t, app, http.MethodGet, "/api/kits", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []dto.KitListItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 3)
	// Colación alemana: Enzyme antes de K; alfabético dentro del grupo.
	assert.Equal(t, "Taq", items[0].Name)
	assert.Equal(t, "Alpha", items[1].Name)
	assert.Equal(t, "Zeta", items[2].Name)
	assert.False(t, items[0].CategoryBoundary)
	assert.True(t, items[1].CategoryBoundary, "cambio de grupo Enzyme→K")
	assert.False(t, items[2].CategoryBoundary)
}
