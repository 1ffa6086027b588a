package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware resuelve la identidad del solicitante desde el Bearer Token.
// Nunca corta la petición: sin header, o con token inválido o expirado, la
// identidad queda como invitado (RoleGuest) y es RequireRole quien decide si
// la ruta exige más. Así las rutas de lectura pública y las protegidas
// comparten el mismo middleware.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalUserID, "")
		c.Locals(LocalRole, entity.RoleGuest)

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Next()
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || role == "" {
			return c.Next()
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza la ruta solo a los roles indicados. Un invitado (sin
// token válido) recibe 401; un usuario autenticado con rol insuficiente, 403.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" || role == entity.RoleGuest {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("autenticación requerida"))
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("no tienes permisos para esta operación"))
	}
}

// GetUserID devuelve el UserID del contexto (vacío para invitados).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (RoleGuest si no hay token válido).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return entity.RoleGuest
	}
	s, _ := v.(string)
	return s
}
