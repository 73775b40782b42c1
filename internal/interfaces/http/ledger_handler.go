package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/application/ledger"
	"github.com/cytochromxxx/StockControl/internal/application/usecase"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
)

// LedgerHandler maneja las mutaciones del ledger y sus lecturas derivadas.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Withdraw godoc
// @Summary      Registrar retiro de volumen
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del kit"
// @Param        body  body  dto.TransactionRequest  true  "Retiro (amount sin signo)"
// @Success      200   {object}  dto.KitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/withdrawals [post]
func (h *LedgerHandler) Withdraw(c *fiber.Ctx) error {
	return h.register(c, kitdom.KindWithdraw)
}

// Refill godoc
// @Summary      Registrar recarga de volumen
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del kit"
// @Param        body  body  dto.TransactionRequest  true  "Recarga (amount sin signo)"
// @Success      200   {object}  dto.KitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/refills [post]
func (h *LedgerHandler) Refill(c *fiber.Ctx) error {
	return h.register(c, kitdom.KindRefill)
}

func (h *LedgerHandler) register(c *fiber.Ctx, kind kitdom.TransactionKind) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var date time.Time
	if in.Date != "" {
		parsed, err := kitdom.ParseDate(in.Date)
		if err != nil {
			return writeError(c, err)
		}
		date = parsed
	}
	k, err := h.uc.RegisterTransaction(c.Context(), c.Params("id"), in.Amount, in.Operator, kind, date, in.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToKitResponse(k))
}

// EditEntry godoc
// @Summary      Corregir el monto de un asiento del historial
// @Description  El volumen del kit se recalcula con el delta viejo→nuevo.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "ID del kit"
// @Param        entryId  path  string  true  "ID del asiento"
// @Param        body     body  dto.EditEntryRequest  true  "Nuevo monto (con signo)"
// @Success      200      {object}  dto.KitResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/entries/{entryId} [put]
func (h *LedgerHandler) EditEntry(c *fiber.Ctx) error {
	var in dto.EditEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	k, err := h.uc.EditEntryAmount(c.Context(), c.Params("id"), c.Params("entryId"), in.NewAmount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToKitResponse(k))
}

// RemoveEntry godoc
// @Summary      Eliminar un asiento del historial
// @Description  Resta el monto del asiento del volumen actual del kit.
// @Tags         ledger
// @Produce      json
// @Param        id       path  string  true  "ID del kit"
// @Param        entryId  path  string  true  "ID del asiento"
// @Success      200      {object}  dto.KitResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/entries/{entryId} [delete]
func (h *LedgerHandler) RemoveEntry(c *fiber.Ctx) error {
	k, err := h.uc.RemoveEntry(c.Context(), c.Params("id"), c.Params("entryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToKitResponse(k))
}

// Series godoc
// @Summary      Serie temporal de volumen para graficar
// @Description  Reconstruye la evolución del volumen hacia atrás desde el
// @Description  estado actual y termina en el punto "Jetzt".
// @Tags         ledger
// @Produce      json
// @Param        id     path   string  true   "ID del kit"
// @Param        limit  query  int     false  "Ventana de asientos"  default(20)
// @Success      200    {array}  dto.SeriesPointResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/series [get]
func (h *LedgerHandler) Series(c *fiber.Ctx) error {
	points, err := h.uc.Series(c.Context(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.SeriesPointResponse, len(points))
	for i, p := range points {
		out[i] = dto.SeriesPointResponse{Label: p.Label, Volume: p.Volume}
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial del kit con filtros de auditoría
// @Tags         ledger
// @Produce      json
// @Param        id         path   string  true   "ID del kit"
// @Param        operator   query  string  false  "Filtrar por operador"
// @Param        direction  query  string  false  "all | withdraw | refill"  default(all)
// @Param        from       query  string  false  "Desde (DD.MM.YYYY o YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta inclusive (DD.MM.YYYY o YYYY-MM-DD)"
// @Success      200        {array}  dto.LedgerEntryResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/history [get]
func (h *LedgerHandler) History(c *fiber.Ctx) error {
	filter := kitdom.HistoryFilter{
		Operator:  c.Query("operator"),
		Direction: kitdom.ParseHistoryDirection(c.Query("direction")),
	}
	if s := c.Query("from"); s != "" {
		from, err := kitdom.ParseDate(s)
		if err != nil {
			return writeError(c, err)
		}
		filter.From = from
	}
	if s := c.Query("to"); s != "" {
		to, err := kitdom.ParseDate(s)
		if err != nil {
			return writeError(c, err)
		}
		filter.To = to
	}
	entries, err := h.uc.History(c.Context(), c.Params("id"), filter)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = usecase.ToLedgerEntryResponse(e)
	}
	return c.JSON(out)
}
