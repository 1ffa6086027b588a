package http

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/domain"
)

// Límites del upload de imágenes: solo JPEG/PNG y máximo 1MB, igual que el
// frontend espera.
const maxImageSize = 1 << 20 // 1MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// readImageFile lee el archivo multipart del campo indicado. Si el campo no
// viene, devuelve (nil, "", nil): la imagen siempre es opcional y es el caller
// quien decide qué hacer sin ella.
func readImageFile(c *fiber.Ctx, field string) (data []byte, filename string, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Sin archivo en el form: no es error.
		return nil, "", nil
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return nil, "", fmt.Errorf("%w: solo se permiten imágenes JPEG o PNG", domain.ErrUpload)
	}
	if fileHeader.Size > maxImageSize {
		return nil, "", fmt.Errorf("%w: la imagen supera el máximo de 1MB", domain.ErrUpload)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("%w: no se pudo abrir el archivo", domain.ErrUpload)
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: no se pudo leer el archivo", domain.ErrUpload)
	}
	if len(data) > maxImageSize {
		return nil, "", fmt.Errorf("%w: la imagen supera el máximo de 1MB", domain.ErrUpload)
	}
	return data, fileHeader.Filename, nil
}
