package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(rv *entity.Review) error {
	cp := *rv
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *fakeReviewRepo) GetByID(id string) (*entity.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListActive() ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.DeletedAt == nil {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListActiveByTechnology(technologyID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.TechnologyID == technologyID && rv.DeletedAt == nil {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(rv *entity.Review) error {
	for i, existing := range r.reviews {
		if existing.ID == rv.ID {
			cp := *rv
			r.reviews[i] = &cp
		}
	}
	return nil
}

func (r *fakeReviewRepo) SoftDelete(id string) (*entity.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id && rv.DeletedAt == nil {
			now := time.Now()
			rv.DeletedAt = &now
			cp := *rv
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeRatingTechRepo registra las escrituras de rating para las aserciones.
type fakeRatingTechRepo struct {
	techs   map[string]*entity.Technology
	ratings map[string]decimal.Decimal
}

func (r *fakeRatingTechRepo) Create(*entity.Technology) error { return nil }
func (r *fakeRatingTechRepo) GetByID(id string) (*entity.Technology, error) {
	return r.techs[id], nil
}
func (r *fakeRatingTechRepo) GetActiveByID(id string) (*entity.Technology, error) {
	t := r.techs[id]
	if t == nil || t.DeletedAt != nil {
		return nil, nil
	}
	return t, nil
}
func (r *fakeRatingTechRepo) FindActiveByIDs([]string) ([]*entity.Technology, error) {
	return nil, nil
}
func (r *fakeRatingTechRepo) ListActive() ([]*entity.Technology, error) { return nil, nil }
func (r *fakeRatingTechRepo) ListActiveByCategory(string) ([]*entity.Technology, error) {
	return nil, nil
}
func (r *fakeRatingTechRepo) SearchActiveByName(string) ([]*entity.Technology, error) {
	return nil, nil
}
func (r *fakeRatingTechRepo) Update(*entity.Technology) error { return nil }
func (r *fakeRatingTechRepo) UpdateRating(id string, rating decimal.Decimal) error {
	r.ratings[id] = rating
	return nil
}
func (r *fakeRatingTechRepo) SoftDelete(string) (*entity.Technology, error) { return nil, nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(*entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error { return nil }
func (r *fakeUserRepo) ListActive() ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) SoftDelete(string) (*entity.User, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	reviewTechID = "tech-1"
	authorID     = "user-1"
	otherUserID  = "user-2"
)

func newReviewFixture() (*usecase.ReviewUseCase, *fakeReviewRepo, *fakeRatingTechRepo) {
	reviewRepo := &fakeReviewRepo{}
	techRepo := &fakeRatingTechRepo{
		techs: map[string]*entity.Technology{
			reviewTechID: {ID: reviewTechID, Name: "Fénix 10", Brand: "Acme"},
		},
		ratings: map[string]decimal.Decimal{},
	}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		authorID:    {ID: authorID, Name: "Ana", Role: entity.RoleUser},
		otherUserID: {ID: otherUserID, Name: "Luis", Role: entity.RoleUser},
	}}
	return usecase.NewReviewUseCase(reviewRepo, techRepo, userRepo), reviewRepo, techRepo
}

func ratingOf(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReviewCreate_RecalculaPromedio(t *testing.T) {
	uc, _, techRepo := newReviewFixture()

	_, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(4), Comment: "muy buena",
	})
	require.NoError(t, err)
	assert.True(t, ratingOf(4).Equal(techRepo.ratings[reviewTechID]),
		"con una sola review el promedio es su rating")

	_, err = uc.Create(otherUserID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(5), Comment: "excelente",
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.5").Equal(techRepo.ratings[reviewTechID]),
		"promedio de 4 y 5 debe ser 4.5")
}

func TestReviewCreate_RatingFueraDeRango(t *testing.T) {
	uc, _, _ := newReviewFixture()

	_, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(6), Comment: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: decimal.RequireFromString("0.5"), Comment: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReviewCreate_TecnologiaInexistente(t *testing.T) {
	uc, _, _ := newReviewFixture()
	_, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: "no-existe", Rating: ratingOf(4), Comment: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewUpdate_SoloAutorOAdmin(t *testing.T) {
	uc, _, _ := newReviewFixture()
	created, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(4), Comment: "buena",
	})
	require.NoError(t, err)

	nuevo := "mejor de lo que esperaba"

	// Otro usuario no puede tocarla.
	_, err = uc.Update(otherUserID, entity.RoleUser, created.ID, dto.UpdateReviewRequest{Comment: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El autor sí.
	out, err := uc.Update(authorID, entity.RoleUser, created.ID, dto.UpdateReviewRequest{Comment: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, nuevo, out.Comment)

	// Y un admin también.
	otro := "moderado"
	_, err = uc.Update(otherUserID, entity.RoleAdmin, created.ID, dto.UpdateReviewRequest{Comment: &otro})
	assert.NoError(t, err)
}

func TestReviewUpdate_NuevoRatingRecalcula(t *testing.T) {
	uc, _, techRepo := newReviewFixture()
	created, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(2), Comment: "regular",
	})
	require.NoError(t, err)

	cinco := ratingOf(5)
	_, err = uc.Update(authorID, entity.RoleUser, created.ID, dto.UpdateReviewRequest{Rating: &cinco})
	require.NoError(t, err)
	assert.True(t, ratingOf(5).Equal(techRepo.ratings[reviewTechID]))
}

func TestReviewDelete_PromedioVuelveACero(t *testing.T) {
	uc, _, techRepo := newReviewFixture()
	created, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(4), Comment: "buena",
	})
	require.NoError(t, err)

	_, err = uc.Delete(authorID, entity.RoleUser, created.ID)
	require.NoError(t, err)

	assert.True(t, decimal.Zero.Equal(techRepo.ratings[reviewTechID]),
		"sin reviews activas el rating vuelve a 0")

	// La review borrada ya no es visible.
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewDelete_OtroUsuarioNoPuede(t *testing.T) {
	uc, _, _ := newReviewFixture()
	created, err := uc.Create(authorID, dto.CreateReviewRequest{
		TechnologyID: reviewTechID, Rating: ratingOf(4), Comment: "buena",
	})
	require.NoError(t, err)

	_, err = uc.Delete(otherUserID, entity.RoleUser, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
