package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
)

// ReviewHandler maneja las reviews de tecnologías.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler de reviews.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Crear review (usuario autenticado)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReviewRequest  true  "technology_id, rating 1-5, comment"
// @Success      201   {object}  dto.Response{data=dto.ReviewResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("review creada", out))
}

// List godoc
// @Summary      Listar reviews activas
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ReviewResponse}
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("reviews obtenidas", out))
}

// GetByID godoc
// @Summary      Obtener review por id
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "id de la review"
// @Success      200  {object}  dto.Response{data=dto.ReviewResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/reviews/{id} [get]
func (h *ReviewHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("review obtenida", out))
}

// Update godoc
// @Summary      Actualizar review propia (o cualquiera si admin)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "id de la review"
// @Param        body  body  dto.UpdateReviewRequest  true  "rating y/o comment"
// @Success      200   {object}  dto.Response{data=dto.ReviewResponse}
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/reviews/{id} [patch]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("review actualizada", out))
}

// Delete godoc
// @Summary      Borrar (soft) review propia (o cualquiera si admin)
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "id de la review"
// @Success      200  {object}  dto.Response{data=dto.ReviewResponse}
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("review eliminada", out))
}
