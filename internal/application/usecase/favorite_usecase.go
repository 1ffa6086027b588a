package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

// FavoriteUseCase casos de uso de la lista de favoritos (una por usuario,
// creada perezosamente al primer Add).
type FavoriteUseCase struct {
	repo     repository.FavoriteRepository
	techRepo repository.TechnologyRepository
	catRepo  repository.CategoryRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(repo repository.FavoriteRepository, techRepo repository.TechnologyRepository, catRepo repository.CategoryRepository) *FavoriteUseCase {
	return &FavoriteUseCase{repo: repo, techRepo: techRepo, catRepo: catRepo}
}

// Add agrega una tecnología a la lista del usuario; crea la lista si no
// existe. Duplicados fallan con ErrDuplicate.
func (uc *FavoriteUseCase) Add(userID, technologyID string) (*dto.FavoriteResponse, error) {
	tech, err := uc.techRepo.GetActiveByID(technologyID)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
	}

	fav, err := uc.repo.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if fav == nil {
		fav = &entity.Favorite{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		if err := uc.repo.Create(fav); err != nil {
			return nil, err
		}
	}

	exists, err := uc.repo.HasItem(fav.ID, technologyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: la tecnología ya está en favoritos", domain.ErrDuplicate)
	}
	item := &entity.FavoriteItem{
		FavoriteID:   fav.ID,
		TechnologyID: technologyID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.AddItem(item); err != nil {
		return nil, err
	}
	return uc.respond(fav)
}

// Get devuelve la lista del usuario; si no tiene, una lista vacía (no es error).
func (uc *FavoriteUseCase) Get(userID string) (*dto.FavoriteResponse, error) {
	fav, err := uc.repo.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if fav == nil {
		return &dto.FavoriteResponse{Technologies: []dto.TechnologyResponse{}}, nil
	}
	return uc.respond(fav)
}

// Remove quita una tecnología de la lista del usuario.
func (uc *FavoriteUseCase) Remove(userID, technologyID string) error {
	fav, err := uc.repo.GetActiveByUser(userID)
	if err != nil {
		return err
	}
	if fav == nil {
		return fmt.Errorf("%w: el usuario no tiene lista de favoritos", domain.ErrNotFound)
	}
	exists, err := uc.repo.HasItem(fav.ID, technologyID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: la tecnología no está en favoritos", domain.ErrNotFound)
	}
	return uc.repo.RemoveItem(fav.ID, technologyID)
}

// respond arma la lista con el detalle de cada tecnología activa. Las
// tecnologías borradas después de agregarse simplemente no aparecen.
func (uc *FavoriteUseCase) respond(fav *entity.Favorite) (*dto.FavoriteResponse, error) {
	ids, err := uc.repo.ListItems(fav.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.FavoriteResponse{ID: fav.ID, Technologies: []dto.TechnologyResponse{}}
	if len(ids) == 0 {
		return resp, nil
	}
	techs, err := uc.techRepo.FindActiveByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Technology, len(techs))
	catIDs := make([]string, 0, len(techs))
	seen := make(map[string]bool, len(techs))
	for _, t := range techs {
		byID[t.ID] = t
		if !seen[t.CategoryID] {
			seen[t.CategoryID] = true
			catIDs = append(catIDs, t.CategoryID)
		}
	}
	catByID := make(map[string]*entity.Category, len(catIDs))
	if len(catIDs) > 0 {
		categories, err := uc.catRepo.FindByIDs(catIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			catByID[c.ID] = c
		}
	}
	for _, id := range ids {
		t := byID[id]
		if t == nil {
			continue
		}
		item := dto.TechnologyResponse{
			ID:          t.ID,
			Name:        t.Name,
			Brand:       t.Brand,
			Description: t.Description,
			Image:       t.Image,
			Rating:      t.Rating,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
		if c := catByID[t.CategoryID]; c != nil {
			item.Category = dto.CategorySummary{ID: c.ID, Name: c.Name}
		}
		resp.Technologies = append(resp.Technologies, item)
	}
	return resp, nil
}
