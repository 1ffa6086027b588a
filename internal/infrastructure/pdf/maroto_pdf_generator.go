// Package pdf implementa la exportación del resultado de comparación a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "Comparativa" + fecha de generación                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHAS: Tecnología 1 (izq)  │  Tecnología 2 (der)          │
//	│          nombre, marca, categoría, rating                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Característica | Valor Tech 1 | Valor Tech 2         │
//	│         una fila por clave de la unión; "-" si falta          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcomparison "github.com/tu-usuario/techreview-api/internal/application/comparison"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcomparison.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa comparison.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateComparisonPDF genera el PDF de la comparación y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateComparisonPDF(_ context.Context, result *dto.CompareResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comparativa: %s vs %s", result.Tech1.Name, result.Tech2.Name), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(techCardsRow(result.Tech1, result.Tech2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla del diff
	m.AddRows(tableHeaderRow(result.Tech1.Name, result.Tech2.Name))
	for _, r := range tableRows(result.Comparison) {
		m.AddRows(r)
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(result.Comparison)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la comparativa + fecha de generación.
func headerRow(result *dto.CompareResponse) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("COMPARATIVA DE TECNOLOGÍAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s vs %s", result.Tech1.Name, result.Tech2.Name), props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// techCardsRow: ficha de cada tecnología, lado a lado.
func techCardsRow(t1, t2 dto.ComparisonTech) core.Row {
	card := func(t dto.ComparisonTech) []core.Component {
		return []core.Component{
			text.New(t.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 1}),
			text.New(fmt.Sprintf("Marca: %s   |   Categoría: %s",
				nonEmpty(t.Brand, "—"), nonEmpty(t.Category.Name, "—"),
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
			text.New("Rating: "+t.Rating.StringFixed(2)+" / 5.00", props.Text{
				Size: 8, Top: 13, Color: colorPrimary,
			}),
		}
	}
	return row.New(20).Add(
		col.New(6).Add(card(t1)...),
		col.New(6).Add(card(t2)...),
	)
}

// tableHeaderRow: cabecera de la tabla del diff.
func tableHeaderRow(name1, name2 string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Característica", 4, align.Left),
		h(name1, 4, align.Center),
		h(name2, 4, align.Center),
	)
}

// tableRows: una fila por clave de la unión, en el orden del diff.
func tableRows(comparison []dto.ComparisonRow) []core.Row {
	result := make([]core.Row, 0, len(comparison))
	for _, c := range comparison {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				c.KeySpec,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				c.Tech1Value,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				c.Tech2Value,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Documento generado automáticamente. %d características comparadas. "+
				"\"-\" indica que la tecnología no registra esa característica.", total),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
