package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cytochromxxx/StockControl/internal/application/export"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
)

// ExportHandler sirve la vista de inventario en CSV, XLSX y PDF. Acepta los
// mismos parámetros de vista que GET /api/kits.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func viewParams(c *fiber.Ctx) export.ViewParams {
	return export.ViewParams{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		SortBy:   kitdom.ParseSortOption(c.Query("sort")),
	}
}

// CSV godoc
// @Summary      Exportar la vista como CSV (UTF-8 con BOM)
// @Tags         export
// @Produce      text/csv
// @Param        category  query  string  false  "Clave de categoría"
// @Param        q         query  string  false  "Búsqueda"
// @Param        sort      query  string  false  "name | volume | status"
// @Success      200  {string}  string
// @Router       /api/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	data, err := h.uc.CSV(c.Context(), viewParams(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bestand.csv"`)
	return c.Send(data)
}

// XLSX godoc
// @Summary      Exportar la vista como libro Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        category  query  string  false  "Clave de categoría"
// @Param        q         query  string  false  "Búsqueda"
// @Param        sort      query  string  false  "name | volume | status"
// @Success      200  {string}  string
// @Router       /api/export/xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	data, err := h.uc.XLSX(c.Context(), viewParams(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bestand.xlsx"`)
	return c.Send(data)
}

// PDF godoc
// @Summary      Informe de stock de la vista en PDF
// @Tags         export
// @Produce      application/pdf
// @Param        category  query  string  false  "Clave de categoría"
// @Param        q         query  string  false  "Búsqueda"
// @Param        sort      query  string  false  "name | volume | status"
// @Success      200  {string}  string
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.Context(), viewParams(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bestandsbericht.pdf"`)
	return c.Send(data)
}
