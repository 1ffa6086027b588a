package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
)

// CategoryHandler maneja el CRUD de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría (admin)
// @Tags         categories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "nombre"
// @Param        description  formData  string  true   "descripción"
// @Param        icon         formData  file    false  "ícono JPEG/PNG max 1MB"
// @Success      201  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" || in.Description == "" {
		return badRequest(c, "name y description son requeridos")
	}
	icon, iconName, err := readImageFile(c, "icon")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in, icon, iconName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("categoría creada", out))
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categorías obtenidas", out))
}

// ListWithTechnologies godoc
// @Summary      Listar categorías con sus tecnologías activas
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CategoryWithTechnologiesResponse}
// @Router       /api/categories/with-technologies [get]
func (h *CategoryHandler) ListWithTechnologies(c *fiber.Ctx) error {
	out, err := h.uc.ListWithTechnologies()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categorías obtenidas", out))
}

// GetByID godoc
// @Summary      Obtener categoría con sus tecnologías activas
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "id de la categoría"
// @Success      200  {object}  dto.Response{data=dto.CategoryWithTechnologiesResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDWithTechnologies(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría obtenida", out))
}

// Update godoc
// @Summary      Actualizar categoría (admin)
// @Tags         categories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "id de la categoría"
// @Param        name         formData  string  false  "nombre"
// @Param        description  formData  string  false  "descripción"
// @Param        icon         formData  file    false  "ícono JPEG/PNG max 1MB"
// @Success      200  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	icon, iconName, err := readImageFile(c, "icon")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, icon, iconName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría actualizada", out))
}

// Delete godoc
// @Summary      Borrar categoría (admin, borrado físico)
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "id de la categoría"
// @Success      200  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría eliminada", out))
}
