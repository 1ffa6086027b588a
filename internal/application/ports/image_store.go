package ports

import "context"

// ImageStore es el contrato mínimo con el hosting de imágenes: recibe los
// bytes y un nombre original, y devuelve la URL pública estable del objeto.
// category agrupa los objetos por entidad (technology, article, profile...).
// Lo implementa infrastructure/objectstore; el uso de interfaz mantiene los
// casos de uso testeables sin red.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, category, originalFilename string) (string, error)
}
