package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/application/usecase"
)

// ImportHandler maneja el alta masiva de kits desde CSV.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// CSV godoc
// @Summary      Importar kits desde CSV
// @Description  Tolerante por fila: las filas inválidas se reportan en el
// @Description  resumen y el resto del lote se crea igualmente.
// @Tags         import
// @Accept       text/csv
// @Produce      json
// @Success      200  {object}  dto.ImportSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/import/csv [post]
func (h *ImportHandler) CSV(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "cuerpo CSV vacío"})
	}
	return c.JSON(h.uc.ImportCSV(c.Context(), body))
}
