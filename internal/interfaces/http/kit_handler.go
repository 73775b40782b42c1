package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/application/usecase"
	kitdom "github.com/cytochromxxx/StockControl/internal/domain/kit"
)

// KitHandler maneja las peticiones HTTP del ciclo de vida de kits.
type KitHandler struct {
	uc *usecase.KitUseCase
}

// NewKitHandler construye el handler.
func NewKitHandler(uc *usecase.KitUseCase) *KitHandler {
	return &KitHandler{uc: uc}
}

// Create godoc
// @Summary      Crear kit
// @Tags         kits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKitRequest  true  "Datos del kit"
// @Success      201   {object}  dto.KitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/kits [post]
func (h *KitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	k, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToKitResponse(k))
}

// GetByID godoc
// @Summary      Obtener kit por ID (historial incluido)
// @Tags         kits
// @Produce      json
// @Param        id   path  string  true  "ID del kit"
// @Success      200  {object}  dto.KitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kits/{id} [get]
func (h *KitHandler) GetByID(c *fiber.Ctx) error {
	k, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToKitResponse(k))
}

// List godoc
// @Summary      Vista de inventario: filtro por categoría, búsqueda y orden
// @Tags         kits
// @Produce      json
// @Param        category  query  string  false  "Clave de categoría; vacía = todas"
// @Param        q         query  string  false  "Búsqueda por nombre, ID o productos asociados"
// @Param        sort      query  string  false  "name | volume | status"  default(name)
// @Success      200       {array}  dto.KitListItem
// @Router       /api/kits [get]
func (h *KitHandler) List(c *fiber.Ctx) error {
	kits, err := h.uc.View(c.Context(),
		c.Query("category"),
		c.Query("q"),
		kitdom.ParseSortOption(c.Query("sort")),
	)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToKitListItems(kits))
}

// Update godoc
// @Summary      Actualizar campos editables del kit
// @Description  El volumen y el historial no son modificables por esta vía.
// @Tags         kits
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del kit"
// @Param        body  body  dto.UpdateKitRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.KitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/kits/{id} [put]
func (h *KitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateKitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	k, err := h.uc.UpdateFields(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToKitResponse(k))
}

// Delete godoc
// @Summary      Eliminar kit (definitivo, historial incluido)
// @Tags         kits
// @Param        id  path  string  true  "ID del kit"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kits/{id} [delete]
func (h *KitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
