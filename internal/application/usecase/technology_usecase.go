package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/ports"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

// TechnologyUseCase casos de uso CRUD y búsqueda para tecnologías.
// Rating es derivado: aquí nunca se escribe; lo recalcula ReviewUseCase.
type TechnologyUseCase struct {
	repo    repository.TechnologyRepository
	catRepo repository.CategoryRepository
	images  ports.ImageStore
}

// NewTechnologyUseCase construye el caso de uso.
func NewTechnologyUseCase(repo repository.TechnologyRepository, catRepo repository.CategoryRepository, images ports.ImageStore) *TechnologyUseCase {
	return &TechnologyUseCase{repo: repo, catRepo: catRepo, images: images}
}

// Create crea una tecnología con rating 0; la imagen es opcional.
func (uc *TechnologyUseCase) Create(ctx context.Context, in dto.CreateTechnologyRequest, image []byte, imageName string) (*dto.TechnologyResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, fmt.Errorf("%w: name y category_id son requeridos", domain.ErrInvalidInput)
	}
	category, err := uc.catRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	imageURL := ""
	if len(image) > 0 {
		url, err := uc.images.Upload(ctx, image, "technology", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		imageURL = url
	}
	now := time.Now()
	tech := &entity.Technology{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Brand:       in.Brand,
		Description: in.Description,
		Image:       imageURL,
		Rating:      decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(tech); err != nil {
		return nil, err
	}
	return uc.toResponse(tech, category), nil
}

// GetByID obtiene una tecnología activa por id.
func (uc *TechnologyUseCase) GetByID(id string) (*dto.TechnologyResponse, error) {
	tech, err := uc.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
	}
	return uc.respond(tech)
}

// List lista todas las tecnologías activas.
func (uc *TechnologyUseCase) List() ([]dto.TechnologyResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return uc.respondList(list)
}

// Search busca tecnologías activas por nombre (coincidencia parcial, sin
// distinguir mayúsculas). Query vacío es entrada inválida.
func (uc *TechnologyUseCase) Search(query string) ([]dto.TechnologyResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: el query de búsqueda es requerido", domain.ErrInvalidInput)
	}
	list, err := uc.repo.SearchActiveByName(query)
	if err != nil {
		return nil, err
	}
	return uc.respondList(list)
}

// Update actualiza una tecnología; campos nil no se tocan.
func (uc *TechnologyUseCase) Update(ctx context.Context, id string, in dto.UpdateTechnologyRequest, image []byte, imageName string) (*dto.TechnologyResponse, error) {
	tech, err := uc.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
	}
	if in.Name == nil && in.Brand == nil && in.Description == nil && in.CategoryID == nil && len(image) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	if in.CategoryID != nil {
		category, err := uc.catRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
		}
		tech.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		tech.Name = *in.Name
	}
	if in.Brand != nil {
		tech.Brand = *in.Brand
	}
	if in.Description != nil {
		tech.Description = *in.Description
	}
	if len(image) > 0 {
		url, err := uc.images.Upload(ctx, image, "technology", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		tech.Image = url
	}
	tech.UpdatedAt = time.Now()
	if err := uc.repo.Update(tech); err != nil {
		return nil, err
	}
	return uc.respond(tech)
}

// Delete marca la tecnología con borrado lógico.
func (uc *TechnologyUseCase) Delete(id string) (*dto.TechnologyResponse, error) {
	tech, err := uc.repo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
	}
	return uc.respond(tech)
}

func (uc *TechnologyUseCase) respond(tech *entity.Technology) (*dto.TechnologyResponse, error) {
	category, err := uc.catRepo.GetByID(tech.CategoryID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(tech, category), nil
}

func (uc *TechnologyUseCase) respondList(list []*entity.Technology) ([]dto.TechnologyResponse, error) {
	catIDs := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, t := range list {
		if !seen[t.CategoryID] {
			seen[t.CategoryID] = true
			catIDs = append(catIDs, t.CategoryID)
		}
	}
	byID := make(map[string]*entity.Category, len(catIDs))
	if len(catIDs) > 0 {
		categories, err := uc.catRepo.FindByIDs(catIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			byID[c.ID] = c
		}
	}
	out := make([]dto.TechnologyResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *uc.toResponse(t, byID[t.CategoryID]))
	}
	return out, nil
}

// toResponse arma la salida; category puede ser nil si la categoría fue
// borrada (referencia colgante heredada, ver DESIGN.md).
func (uc *TechnologyUseCase) toResponse(t *entity.Technology, category *entity.Category) *dto.TechnologyResponse {
	resp := &dto.TechnologyResponse{
		ID:          t.ID,
		Name:        t.Name,
		Brand:       t.Brand,
		Description: t.Description,
		Image:       t.Image,
		Rating:      t.Rating,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if category != nil {
		resp.Category = dto.CategorySummary{ID: category.ID, Name: category.Name}
	}
	return resp
}
