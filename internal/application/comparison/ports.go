package comparison

import (
	"context"

	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con un repositorio de
// atributos atado a esa transacción. Se usa para que la creación en lote sea
// todo-o-nada: un fallo en la fila N no deja filas 1..N-1 confirmadas.
type TxRunner interface {
	Run(ctx context.Context, fn func(attrRepo repository.ComparisonAttributeRepository) error) error
}

// PDFGenerator renderiza un resultado de comparación como documento PDF.
// Lo implementa infrastructure/pdf.
type PDFGenerator interface {
	GenerateComparisonPDF(ctx context.Context, result *dto.CompareResponse) ([]byte, error)
}
