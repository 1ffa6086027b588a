package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/comparison"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
)

// ComparisonHandler expone el motor de comparación y el CRUD de sus atributos.
type ComparisonHandler struct {
	uc *comparison.UseCase
}

// NewComparisonHandler construye el handler de comparación.
func NewComparisonHandler(uc *comparison.UseCase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// Compare godoc
// @Summary      Comparar dos tecnologías lado a lado
// @Description  Devuelve la unión de características de ambas tecnologías; "-" cuando un lado no registra la clave.
// @Tags         comparison
// @Produce      json
// @Param        tech1  query  string  true  "id de la primera tecnología"
// @Param        tech2  query  string  true  "id de la segunda tecnología"
// @Success      200  {object}  dto.Response{data=dto.CompareResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/comparison [get]
func (h *ComparisonHandler) Compare(c *fiber.Ctx) error {
	out, err := h.uc.Compare(c.Query("tech1"), c.Query("tech2"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("comparación generada", out))
}

// ComparePDF godoc
// @Summary      Exportar la comparación a PDF
// @Tags         comparison
// @Produce      application/pdf
// @Param        tech1  query  string  true  "id de la primera tecnología"
// @Param        tech2  query  string  true  "id de la segunda tecnología"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/comparison/pdf [get]
func (h *ComparisonHandler) ComparePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ComparePDF(c.Context(), c.Query("tech1"), c.Query("tech2"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comparacion.pdf"`)
	return c.Send(pdfBytes)
}

// List godoc
// @Summary      Listar atributos de comparación activos
// @Tags         comparison
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ComparisonAttributeResponse}
// @Router       /api/comparisons [get]
func (h *ComparisonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("atributos obtenidos", out))
}

// GetByID godoc
// @Summary      Obtener un atributo por id (incluye borrados, auditoría)
// @Tags         comparison
// @Produce      json
// @Param        id   path      string  true  "id del atributo"
// @Success      200  {object}  dto.Response{data=dto.ComparisonAttributeResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/comparisons/{id} [get]
func (h *ComparisonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("atributo obtenido", out))
}

// Create godoc
// @Summary      Crear atributos de comparación (admin)
// @Description  Acepta un par key/value o listas paralelas keys[]/values[]. El lote es atómico y comparte la imagen opcional.
// @Tags         comparison
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        technology_id  formData  string  true   "id de la tecnología"
// @Param        key            formData  string  false  "clave (modo single)"
// @Param        value          formData  string  false  "valor (modo single)"
// @Param        keys           formData  []string  false  "claves (modo lote)"
// @Param        values         formData  []string  false  "valores (modo lote)"
// @Param        image          formData  file    false  "imagen JPEG/PNG max 1MB"
// @Success      201  {object}  dto.Response{data=[]dto.ComparisonAttributeResponse}
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/comparisons [post]
func (h *ComparisonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComparisonRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	image, imageName, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), in, image, imageName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("atributos creados", out))
}

// Update godoc
// @Summary      Actualizar un atributo (admin)
// @Tags         comparison
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      string  true   "id del atributo"
// @Param        technology_id  formData  string  false  "id de la tecnología"
// @Param        key            formData  string  false  "clave"
// @Param        value          formData  string  false  "valor"
// @Param        image          formData  file    false  "imagen JPEG/PNG max 1MB"
// @Success      200  {object}  dto.Response{data=dto.ComparisonAttributeResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/comparisons/{id} [patch]
func (h *ComparisonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateComparisonRequest
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
	return c.JSON(dto.OK("atributo actualizado", out))
}

// Delete godoc
// @Summary      Borrar (soft) un atributo (admin)
// @Tags         comparison
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "id del atributo"
// @Success      200  {object}  dto.Response{data=dto.ComparisonAttributeResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/comparisons/{id} [delete]
func (h *ComparisonHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("atributo eliminado", out))
}
