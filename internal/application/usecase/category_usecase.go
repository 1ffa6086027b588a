package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/ports"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
// El borrado es físico (la entidad no tiene deleted_at); las tecnologías que
// referencien una categoría borrada quedan con la referencia colgando.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	techRepo repository.TechnologyRepository
	images   ports.ImageStore
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, techRepo repository.TechnologyRepository, images ports.ImageStore) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, techRepo: techRepo, images: images}
}

// Create crea una categoría; el ícono es opcional y se sube al object storage.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, icon []byte, iconName string) (*dto.CategoryResponse, error) {
	if in.Name == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: name y description son requeridos", domain.ErrInvalidInput)
	}
	iconURL := ""
	if len(icon) > 0 {
		url, err := uc.images.Upload(ctx, icon, "category", iconName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		iconURL = url
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Icon:        iconURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por id.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// ListWithTechnologies lista categorías con sus tecnologías activas (vista admin).
func (uc *CategoryUseCase) ListWithTechnologies() ([]dto.CategoryWithTechnologiesResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryWithTechnologiesResponse, 0, len(list))
	for _, c := range list {
		withTechs, err := uc.withTechnologies(c)
		if err != nil {
			return nil, err
		}
		out = append(out, *withTechs)
	}
	return out, nil
}

// GetByIDWithTechnologies obtiene una categoría con sus tecnologías activas (vista admin).
func (uc *CategoryUseCase) GetByIDWithTechnologies(id string) (*dto.CategoryWithTechnologiesResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	return uc.withTechnologies(category)
}

// Update actualiza nombre/descripción/ícono; campos nil no se tocan.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest, icon []byte, iconName string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	if in.Name == nil && in.Description == nil && len(icon) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if len(icon) > 0 {
		url, err := uc.images.Upload(ctx, icon, "category", iconName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		category.Icon = url
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete borra la categoría físicamente.
func (uc *CategoryUseCase) Delete(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	return toCategoryResponse(category), nil
}

func (uc *CategoryUseCase) withTechnologies(c *entity.Category) (*dto.CategoryWithTechnologiesResponse, error) {
	techs, err := uc.techRepo.ListActiveByCategory(c.ID)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.TechnologySummary, 0, len(techs))
	for _, t := range techs {
		summaries = append(summaries, dto.TechnologySummary{ID: t.ID, Name: t.Name, Brand: t.Brand})
	}
	return &dto.CategoryWithTechnologiesResponse{
		CategoryResponse: *toCategoryResponse(c),
		Technologies:     summaries,
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}
