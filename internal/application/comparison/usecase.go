package comparison

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/ports"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/compare"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

// UseCase es el motor de comparación: carga los atributos de dos tecnologías,
// calcula el diff clave-por-clave y gestiona la autoría de los atributos
// (creación en lote, actualización parcial y borrado lógico).
//
// La autorización (solo admin escribe) se aplica en las rutas; aquí no llega
// ninguna petición sin el rol requerido.
type UseCase struct {
	attrRepo repository.ComparisonAttributeRepository
	techRepo repository.TechnologyRepository
	catRepo  repository.CategoryRepository
	tx       TxRunner
	pdf      PDFGenerator
	images   ports.ImageStore
}

// NewUseCase construye el motor con sus dependencias inyectadas.
func NewUseCase(
	attrRepo repository.ComparisonAttributeRepository,
	techRepo repository.TechnologyRepository,
	catRepo repository.CategoryRepository,
	tx TxRunner,
	pdf PDFGenerator,
	images ports.ImageStore,
) *UseCase {
	return &UseCase{
		attrRepo: attrRepo,
		techRepo: techRepo,
		catRepo:  catRepo,
		tx:       tx,
		pdf:      pdf,
		images:   images,
	}
}

// Compare carga ambas tecnologías y produce la tabla unificada de atributos.
// Falla con ErrInvalidInput si falta algún id y con ErrNotFound si los ids no
// resuelven exactamente dos tecnologías activas (cubre "no existe", "borrada"
// y el caso accidental tech1 == tech2).
func (uc *UseCase) Compare(tech1ID, tech2ID string) (*dto.CompareResponse, error) {
	if tech1ID == "" || tech2ID == "" {
		return nil, fmt.Errorf("%w: se requieren los ids de ambas tecnologías", domain.ErrInvalidInput)
	}

	techs, err := uc.techRepo.FindActiveByIDs([]string{tech1ID, tech2ID})
	if err != nil {
		return nil, err
	}
	if len(techs) != 2 {
		return nil, fmt.Errorf("%w: una o ambas tecnologías no existen", domain.ErrNotFound)
	}

	byID := make(map[string]*entity.Technology, 2)
	for _, t := range techs {
		byID[t.ID] = t
	}
	tech1, tech2 := byID[tech1ID], byID[tech2ID]
	if tech1 == nil || tech2 == nil {
		return nil, fmt.Errorf("%w: una o ambas tecnologías no existen", domain.ErrNotFound)
	}

	pairs1, err := uc.loadPairs(tech1.ID)
	if err != nil {
		return nil, err
	}
	pairs2, err := uc.loadPairs(tech2.ID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categorySummaries(tech1.CategoryID, tech2.CategoryID)
	if err != nil {
		return nil, err
	}

	rows := compare.Diff(pairs1, pairs2)
	out := make([]dto.ComparisonRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ComparisonRow{KeySpec: r.Key, Tech1Value: r.Value1, Tech2Value: r.Value2})
	}

	return &dto.CompareResponse{
		Tech1:      toComparisonTech(tech1, categories[tech1.CategoryID]),
		Tech2:      toComparisonTech(tech2, categories[tech2.CategoryID]),
		Comparison: out,
	}, nil
}

// ComparePDF genera la misma comparación como documento PDF.
func (uc *UseCase) ComparePDF(ctx context.Context, tech1ID, tech2ID string) ([]byte, error) {
	result, err := uc.Compare(tech1ID, tech2ID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateComparisonPDF(ctx, result)
}

// List devuelve todas las filas activas con el resumen de su tecnología.
func (uc *UseCase) List() ([]dto.ComparisonAttributeResponse, error) {
	attrs, err := uc.attrRepo.ListActive()
	if err != nil {
		return nil, err
	}

	techIDs := make([]string, 0, len(attrs))
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if !seen[a.TechnologyID] {
			seen[a.TechnologyID] = true
			techIDs = append(techIDs, a.TechnologyID)
		}
	}
	techs, err := uc.techRepo.FindActiveByIDs(techIDs)
	if err != nil {
		return nil, err
	}
	techByID := make(map[string]*entity.Technology, len(techs))
	catIDs := make([]string, 0, len(techs))
	for _, t := range techs {
		techByID[t.ID] = t
		catIDs = append(catIDs, t.CategoryID)
	}
	categories, err := uc.categorySummaries(catIDs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ComparisonAttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, toAttributeResponse(a, techByID[a.TechnologyID], categories, false))
	}
	return out, nil
}

// GetByID busca una fila por id crudo: las filas con borrado lógico siguen
// siendo legibles aquí para auditoría (y solo aquí exponen deleted_at).
func (uc *UseCase) GetByID(id string) (*dto.ComparisonAttributeResponse, error) {
	attr, err := uc.attrRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attr == nil {
		return nil, fmt.Errorf("%w: atributo de comparación no encontrado", domain.ErrNotFound)
	}
	tech, err := uc.techRepo.GetActiveByID(attr.TechnologyID)
	if err != nil {
		return nil, err
	}
	var categories map[string]dto.CategorySummary
	if tech != nil {
		if categories, err = uc.categorySummaries(tech.CategoryID); err != nil {
			return nil, err
		}
	}
	resp := toAttributeResponse(attr, tech, categories, true)
	return &resp, nil
}

// Create crea una o varias filas clave/valor para una tecnología en una sola
// llamada. La validación es previa a cualquier escritura y el lote completo
// corre dentro de una transacción: o se confirman todas las filas o ninguna.
// Si llega imagen, se sube una vez y todas las filas comparten la URL.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateComparisonRequest, image []byte, imageName string) ([]dto.ComparisonAttributeResponse, error) {
	keys, values := in.Pairs()
	if in.TechnologyID == "" {
		return nil, fmt.Errorf("%w: technology_id es requerido", domain.ErrInvalidInput)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un par clave/valor", domain.ErrInvalidInput)
	}
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: keys y values deben tener la misma longitud", domain.ErrInvalidInput)
	}
	for i := range keys {
		if keys[i] == "" || values[i] == "" {
			return nil, fmt.Errorf("%w: clave y valor son requeridos en cada par", domain.ErrInvalidInput)
		}
	}

	tech, err := uc.techRepo.GetActiveByID(in.TechnologyID)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
	}

	imageURL := ""
	if len(image) > 0 {
		imageURL, err = uc.images.Upload(ctx, image, "comparison", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
	}

	now := time.Now()
	attrs := make([]*entity.ComparisonAttribute, 0, len(keys))
	for i := range keys {
		attrs = append(attrs, &entity.ComparisonAttribute{
			ID:           uuid.New().String(),
			TechnologyID: tech.ID,
			Key:          keys[i],
			Value:        values[i],
			Image:        imageURL,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	err = uc.tx.Run(ctx, func(attrRepo repository.ComparisonAttributeRepository) error {
		for _, a := range attrs {
			if err := attrRepo.Create(a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	categories, err := uc.categorySummaries(tech.CategoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComparisonAttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, toAttributeResponse(a, tech, categories, false))
	}
	return out, nil
}

// Update aplica un parche sobre una fila: cualquier subconjunto de
// {technology_id, key, value, imagen}. Sin campos que aplicar falla con
// ErrNothingToUpdate; siempre refresca updated_at.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateComparisonRequest, image []byte, imageName string) (*dto.ComparisonAttributeResponse, error) {
	attr, err := uc.attrRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attr == nil {
		return nil, fmt.Errorf("%w: atributo de comparación no encontrado", domain.ErrNotFound)
	}

	if in.TechnologyID == nil && in.Key == nil && in.Value == nil && len(image) == 0 {
		return nil, domain.ErrNothingToUpdate
	}

	if in.TechnologyID != nil {
		tech, err := uc.techRepo.GetActiveByID(*in.TechnologyID)
		if err != nil {
			return nil, err
		}
		if tech == nil {
			return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
		}
		attr.TechnologyID = tech.ID
	}
	if in.Key != nil {
		if *in.Key == "" {
			return nil, fmt.Errorf("%w: la clave no puede quedar vacía", domain.ErrInvalidInput)
		}
		attr.Key = *in.Key
	}
	if in.Value != nil {
		if *in.Value == "" {
			return nil, fmt.Errorf("%w: el valor no puede quedar vacío", domain.ErrInvalidInput)
		}
		attr.Value = *in.Value
	}
	if len(image) > 0 {
		url, err := uc.images.Upload(ctx, image, "comparison", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		attr.Image = url
	}

	attr.UpdatedAt = time.Now()
	if err := uc.attrRepo.Update(attr); err != nil {
		return nil, err
	}
	return uc.GetByID(attr.ID)
}

// Delete marca la fila con borrado lógico: desaparece de los listados y de
// los diffs futuros pero sigue legible por id para auditoría.
func (uc *UseCase) Delete(id string) (*dto.ComparisonAttributeResponse, error) {
	attr, err := uc.attrRepo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if attr == nil {
		return nil, fmt.Errorf("%w: atributo de comparación no encontrado", domain.ErrNotFound)
	}
	tech, err := uc.techRepo.GetActiveByID(attr.TechnologyID)
	if err != nil {
		return nil, err
	}
	var categories map[string]dto.CategorySummary
	if tech != nil {
		if categories, err = uc.categorySummaries(tech.CategoryID); err != nil {
			return nil, err
		}
	}
	resp := toAttributeResponse(attr, tech, categories, true)
	return &resp, nil
}

// loadPairs es el cargador de atributos: filas activas de una tecnología en
// orden de inserción, proyectadas a pares clave/valor para el diff.
func (uc *UseCase) loadPairs(technologyID string) ([]compare.Pair, error) {
	attrs, err := uc.attrRepo.ListActiveByTechnology(technologyID)
	if err != nil {
		return nil, err
	}
	pairs := make([]compare.Pair, 0, len(attrs))
	for _, a := range attrs {
		pairs = append(pairs, compare.Pair{Key: a.Key, Value: a.Value})
	}
	return pairs, nil
}

// categorySummaries resuelve en lote los resúmenes de categoría.
func (uc *UseCase) categorySummaries(ids ...string) (map[string]dto.CategorySummary, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	out := make(map[string]dto.CategorySummary, len(unique))
	if len(unique) == 0 {
		return out, nil
	}
	categories, err := uc.catRepo.FindByIDs(unique)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		out[c.ID] = dto.CategorySummary{ID: c.ID, Name: c.Name}
	}
	return out, nil
}

func toComparisonTech(t *entity.Technology, category dto.CategorySummary) dto.ComparisonTech {
	return dto.ComparisonTech{
		ID:       t.ID,
		Name:     t.Name,
		Brand:    t.Brand,
		Image:    t.Image,
		Rating:   t.Rating,
		Category: category,
	}
}

// toAttributeResponse arma la salida de una fila. tech puede ser nil si la
// tecnología dueña fue borrada; audit controla si se expone deleted_at.
func toAttributeResponse(a *entity.ComparisonAttribute, tech *entity.Technology, categories map[string]dto.CategorySummary, audit bool) dto.ComparisonAttributeResponse {
	resp := dto.ComparisonAttributeResponse{
		ID:        a.ID,
		Key:       a.Key,
		Value:     a.Value,
		Image:     a.Image,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if tech != nil {
		resp.Technology = dto.AttributeTechnology{
			ID:       tech.ID,
			Name:     tech.Name,
			Category: categories[tech.CategoryID],
		}
	}
	if audit {
		resp.DeletedAt = a.DeletedAt
	}
	return resp
}
