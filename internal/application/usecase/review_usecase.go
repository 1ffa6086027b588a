package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

var (
	minRating = decimal.NewFromInt(1)
	maxRating = decimal.NewFromInt(5)
)

// ReviewUseCase casos de uso de reviews. Cada mutación recalcula el rating
// promedio de la tecnología sobre sus reviews activas; es el único punto del
// sistema que escribe Technology.Rating.
type ReviewUseCase struct {
	repo     repository.ReviewRepository
	techRepo repository.TechnologyRepository
	userRepo repository.UserRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository, techRepo repository.TechnologyRepository, userRepo repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, techRepo: techRepo, userRepo: userRepo}
}

// Create crea una review del usuario autenticado y recalcula el rating.
func (uc *ReviewUseCase) Create(userID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.TechnologyID == "" || in.Comment == "" || in.Rating.IsZero() {
		return nil, fmt.Errorf("%w: technology_id, rating y comment son requeridos", domain.ErrInvalidInput)
	}
	if in.Rating.LessThan(minRating) || in.Rating.GreaterThan(maxRating) {
		return nil, fmt.Errorf("%w: el rating debe estar entre 1 y 5", domain.ErrInvalidInput)
	}
	tech, err := uc.techRepo.GetActiveByID(in.TechnologyID)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, fmt.Errorf("%w: tecnología no encontrada", domain.ErrNotFound)
	}
	now := time.Now()
	review := &entity.Review{
		ID:           uuid.New().String(),
		UserID:       userID,
		TechnologyID: in.TechnologyID,
		Rating:       in.Rating,
		Comment:      in.Comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(review); err != nil {
		return nil, err
	}
	if err := uc.recomputeRating(review.TechnologyID); err != nil {
		return nil, err
	}
	return uc.respond(review)
}

// GetByID obtiene una review por id.
func (uc *ReviewUseCase) GetByID(id string) (*dto.ReviewResponse, error) {
	review, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil || review.DeletedAt != nil {
		return nil, fmt.Errorf("%w: review no encontrada", domain.ErrNotFound)
	}
	return uc.respond(review)
}

// List lista todas las reviews activas.
func (uc *ReviewUseCase) List() ([]dto.ReviewResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		resp, err := uc.respond(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Update actualiza rating/comentario de una review propia (o cualquiera si el
// caller es admin) y recalcula el rating de la tecnología.
func (uc *ReviewUseCase) Update(callerID, callerRole, id string, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil || review.DeletedAt != nil {
		return nil, fmt.Errorf("%w: review no encontrada", domain.ErrNotFound)
	}
	if review.UserID != callerID && callerRole != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: solo el autor o un admin pueden modificar la review", domain.ErrForbidden)
	}
	if in.Rating == nil && in.Comment == nil {
		return nil, domain.ErrNothingToUpdate
	}
	if in.Rating != nil {
		if in.Rating.LessThan(minRating) || in.Rating.GreaterThan(maxRating) {
			return nil, fmt.Errorf("%w: el rating debe estar entre 1 y 5", domain.ErrInvalidInput)
		}
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		if *in.Comment == "" {
			return nil, fmt.Errorf("%w: el comentario no puede quedar vacío", domain.ErrInvalidInput)
		}
		review.Comment = *in.Comment
	}
	review.UpdatedAt = time.Now()
	if err := uc.repo.Update(review); err != nil {
		return nil, err
	}
	if err := uc.recomputeRating(review.TechnologyID); err != nil {
		return nil, err
	}
	return uc.respond(review)
}

// Delete marca la review con borrado lógico y recalcula el rating.
func (uc *ReviewUseCase) Delete(callerID, callerRole, id string) (*dto.ReviewResponse, error) {
	review, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil || review.DeletedAt != nil {
		return nil, fmt.Errorf("%w: review no encontrada", domain.ErrNotFound)
	}
	if review.UserID != callerID && callerRole != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: solo el autor o un admin pueden borrar la review", domain.ErrForbidden)
	}
	deleted, err := uc.repo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if err := uc.recomputeRating(review.TechnologyID); err != nil {
		return nil, err
	}
	return uc.respond(deleted)
}

// recomputeRating promedia las reviews activas de la tecnología (0 si no
// quedan) y lo persiste.
func (uc *ReviewUseCase) recomputeRating(technologyID string) error {
	reviews, err := uc.repo.ListActiveByTechnology(technologyID)
	if err != nil {
		return err
	}
	avg := decimal.Zero
	if len(reviews) > 0 {
		sum := decimal.Zero
		for _, r := range reviews {
			sum = sum.Add(r.Rating)
		}
		avg = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(2)
	}
	return uc.techRepo.UpdateRating(technologyID, avg)
}

func (uc *ReviewUseCase) respond(r *entity.Review) (*dto.ReviewResponse, error) {
	resp := &dto.ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	user, err := uc.userRepo.GetByID(r.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		resp.User = dto.UserSummary{Name: user.Name, ProfileImage: user.ProfileImage}
	}
	tech, err := uc.techRepo.GetByID(r.TechnologyID)
	if err != nil {
		return nil, err
	}
	if tech != nil {
		resp.Technology = dto.TechnologySummary{ID: tech.ID, Name: tech.Name, Brand: tech.Brand}
	}
	return resp, nil
}
