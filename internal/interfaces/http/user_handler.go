package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
)

// UserHandler maneja perfil propio y administración de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("perfil obtenido", out))
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name           formData  string  false  "nombre"
// @Param        password       formData  string  false  "nueva contraseña"
// @Param        profile_image  formData  file    false  "imagen JPEG/PNG max 1MB"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      400  {object}  dto.Response
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	image, imageName, err := readImageFile(c, "profile_image")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetUserID(c), in, image, imageName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("perfil actualizado", out))
}

// List godoc
// @Summary      Listar usuarios activos (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response{data=[]dto.UserResponse}
// @Failure      403  {object}  dto.Response
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("usuarios obtenidos", out))
}

// Delete godoc
// @Summary      Borrar (soft) un usuario (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "id del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("usuario eliminado", out))
}
