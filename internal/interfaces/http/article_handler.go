package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
)

// ArticleHandler maneja los artículos editoriales.
type ArticleHandler struct {
	uc *usecase.ArticleUseCase
}

// NewArticleHandler construye el handler de artículos.
func NewArticleHandler(uc *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo (admin)
// @Tags         articles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        technology_id  formData  string  true   "id de la tecnología"
// @Param        title          formData  string  true   "título"
// @Param        content        formData  string  true   "contenido"
// @Param        excerpt        formData  string  false  "resumen"
// @Param        image          formData  file    false  "portada JPEG/PNG max 1MB"
// @Success      201  {object}  dto.Response{data=dto.ArticleResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.TechnologyID == "" || in.Title == "" || in.Content == "" {
		return badRequest(c, "technology_id, title y content son requeridos")
	}
	image, imageName, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in, image, imageName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("artículo creado", out))
}

// List godoc
// @Summary      Listar artículos activos
// @Tags         articles
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ArticleListItem}
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("artículos obtenidos", out))
}

// Search godoc
// @Summary      Buscar artículos por título
// @Tags         articles
// @Produce      json
// @Param        query  query   string  true  "texto a buscar"
// @Success      200  {object}  dto.Response{data=[]dto.ArticleListItem}
// @Failure      400  {object}  dto.Response
// @Router       /api/articles/search [get]
func (h *ArticleHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("artículos encontrados", out))
}

// GetByID godoc
// @Summary      Obtener artículo por id
// @Tags         articles
// @Produce      json
// @Param        id   path      string  true  "id del artículo"
// @Success      200  {object}  dto.Response{data=dto.ArticleResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("artículo obtenido", out))
}

// Update godoc
// @Summary      Actualizar artículo (admin)
// @Tags         articles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      string  true   "id del artículo"
// @Param        technology_id  formData  string  false  "id de la tecnología"
// @Param        title          formData  string  false  "título"
// @Param        content        formData  string  false  "contenido"
// @Param        excerpt        formData  string  false  "resumen"
// @Param        image          formData  file    false  "portada JPEG/PNG max 1MB"
// @Success      200  {object}  dto.Response{data=dto.ArticleResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/articles/{id} [patch]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
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
	return c.JSON(dto.OK("artículo actualizado", out))
}

// Delete godoc
// @Summary      Borrar (soft) artículo (admin)
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "id del artículo"
// @Success      200  {object}  dto.Response{data=dto.ArticleResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("artículo eliminado", out))
}
