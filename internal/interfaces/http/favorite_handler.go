package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
)

// FavoriteHandler maneja la lista de favoritos del usuario autenticado.
type FavoriteHandler struct {
	uc *usecase.FavoriteUseCase
}

// NewFavoriteHandler construye el handler de favoritos.
func NewFavoriteHandler(uc *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener la lista de favoritos propia
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response{data=dto.FavoriteResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/favorites [get]
func (h *FavoriteHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("favoritos obtenidos", out))
}

// Add godoc
// @Summary      Agregar tecnología a favoritos
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        techId  path  string  true  "id de la tecnología"
// @Success      201  {object}  dto.Response{data=dto.FavoriteResponse}
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/favorites/{techId} [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	out, err := h.uc.Add(GetUserID(c), c.Params("techId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("tecnología agregada a favoritos", out))
}

// Remove godoc
// @Summary      Quitar tecnología de favoritos
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        techId  path  string  true  "id de la tecnología"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/favorites/{techId} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(GetUserID(c), c.Params("techId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tecnología quitada de favoritos", nil))
}
