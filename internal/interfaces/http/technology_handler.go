package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
)

// TechnologyHandler maneja el CRUD y la búsqueda de tecnologías.
type TechnologyHandler struct {
	uc *usecase.TechnologyUseCase
}

// NewTechnologyHandler construye el handler de tecnologías.
func NewTechnologyHandler(uc *usecase.TechnologyUseCase) *TechnologyHandler {
	return &TechnologyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tecnología (admin)
// @Tags         technologies
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  formData  string  true   "id de la categoría"
// @Param        name         formData  string  true   "nombre"
// @Param        brand        formData  string  false  "marca"
// @Param        description  formData  string  false  "descripción"
// @Param        image        formData  file    false  "imagen JPEG/PNG max 1MB"
// @Success      201  {object}  dto.Response{data=dto.TechnologyResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/technologies [post]
func (h *TechnologyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTechnologyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.CategoryID == "" || in.Name == "" {
		return badRequest(c, "category_id y name son requeridos")
	}
	image, imageName, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in, image, imageName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("tecnología creada", out))
}

// List godoc
// @Summary      Listar tecnologías activas
// @Tags         technologies
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.TechnologyResponse}
// @Router       /api/technologies [get]
func (h *TechnologyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tecnologías obtenidas", out))
}

// Search godoc
// @Summary      Buscar tecnologías por nombre
// @Tags         technologies
// @Produce      json
// @Param        query  query   string  true  "texto a buscar"
// @Success      200  {object}  dto.Response{data=[]dto.TechnologyResponse}
// @Failure      400  {object}  dto.Response
// @Router       /api/technologies/search [get]
func (h *TechnologyHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tecnologías encontradas", out))
}

// GetByID godoc
// @Summary      Obtener tecnología por id
// @Tags         technologies
// @Produce      json
// @Param        id   path      string  true  "id de la tecnología"
// @Success      200  {object}  dto.Response{data=dto.TechnologyResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/technologies/{id} [get]
func (h *TechnologyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tecnología obtenida", out))
}

// Update godoc
// @Summary      Actualizar tecnología (admin)
// @Tags         technologies
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "id de la tecnología"
// @Param        category_id  formData  string  false  "id de la categoría"
// @Param        name         formData  string  false  "nombre"
// @Param        brand        formData  string  false  "marca"
// @Param        description  formData  string  false  "descripción"
// @Param        image        formData  file    false  "imagen JPEG/PNG max 1MB"
// @Success      200  {object}  dto.Response{data=dto.TechnologyResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/technologies/{id} [put]
func (h *TechnologyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTechnologyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	image, imageName, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, image, imageName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tecnología actualizada", out))
}

// Delete godoc
// @Summary      Borrar (soft) tecnología (admin)
// @Tags         technologies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "id de la tecnología"
// @Success      200  {object}  dto.Response{data=dto.TechnologyResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/technologies/{id} [delete]
func (h *TechnologyHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tecnología eliminada", out))
}
