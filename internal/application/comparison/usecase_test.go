package comparison_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/techreview-api/internal/application/comparison"
	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeAttrRepo struct {
	attrs []*entity.ComparisonAttribute
}

func (r *fakeAttrRepo) Create(a *entity.ComparisonAttribute) error {
	for _, existing := range r.attrs {
		if existing.DeletedAt == nil && existing.TechnologyID == a.TechnologyID && existing.Key == a.Key {
			return fmt.Errorf("%w: clave '%s' ya existe para la tecnología", domain.ErrDuplicate, a.Key)
		}
	}
	cp := *a
	r.attrs = append(r.attrs, &cp)
	return nil
}

func (r *fakeAttrRepo) GetByID(id string) (*entity.ComparisonAttribute, error) {
	for _, a := range r.attrs {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAttrRepo) ListActiveByTechnology(technologyID string) ([]*entity.ComparisonAttribute, error) {
	var out []*entity.ComparisonAttribute
	for _, a := range r.attrs {
		if a.TechnologyID == technologyID && a.DeletedAt == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttrRepo) ListActive() ([]*entity.ComparisonAttribute, error) {
	var out []*entity.ComparisonAttribute
	for _, a := range r.attrs {
		if a.DeletedAt == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttrRepo) Update(a *entity.ComparisonAttribute) error {
	for i, existing := range r.attrs {
		if existing.ID == a.ID {
			cp := *a
			r.attrs[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeAttrRepo) SoftDelete(id string) (*entity.ComparisonAttribute, error) {
	for _, a := range r.attrs {
		if a.ID == id && a.DeletedAt == nil {
			now := time.Now()
			a.DeletedAt = &now
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeTechRepo struct {
	techs map[string]*entity.Technology
}

func (r *fakeTechRepo) Create(*entity.Technology) error { return nil }
func (r *fakeTechRepo) GetByID(id string) (*entity.Technology, error) {
	return r.techs[id], nil
}
func (r *fakeTechRepo) GetActiveByID(id string) (*entity.Technology, error) {
	t := r.techs[id]
	if t == nil || t.DeletedAt != nil {
		return nil, nil
	}
	return t, nil
}
func (r *fakeTechRepo) FindActiveByIDs(ids []string) ([]*entity.Technology, error) {
	var out []*entity.Technology
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if t := r.techs[id]; t != nil && t.DeletedAt == nil {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTechRepo) ListActive() ([]*entity.Technology, error) { return nil, nil }
func (r *fakeTechRepo) ListActiveByCategory(string) ([]*entity.Technology, error) {
	return nil, nil
}
func (r *fakeTechRepo) SearchActiveByName(string) ([]*entity.Technology, error) { return nil, nil }
func (r *fakeTechRepo) Update(*entity.Technology) error { return nil }
func (r *fakeTechRepo) UpdateRating(string, decimal.Decimal) error { return nil }
func (r *fakeTechRepo) SoftDelete(string) (*entity.Technology, error) { return nil, nil }

type fakeCatRepo struct {
	cats map[string]*entity.Category
}

func (r *fakeCatRepo) Create(*entity.Category) error { return nil }
func (r *fakeCatRepo) GetByID(id string) (*entity.Category, error) {
	return r.cats[id], nil
}
func (r *fakeCatRepo) List() ([]*entity.Category, error) { return nil, nil }
func (r *fakeCatRepo) FindByIDs(ids []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c := r.cats[id]; c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCatRepo) Update(*entity.Category) error { return nil }
func (r *fakeCatRepo) Delete(string) (*entity.Category, error) { return nil, nil }

// fakeTxRunner simula la atomicidad del lote: toma una copia del estado del
// repo antes de fn y la restaura si fn falla.
type fakeTxRunner struct {
	repo *fakeAttrRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(attrRepo repository.ComparisonAttributeRepository) error) error {
	snapshot := make([]*entity.ComparisonAttribute, len(r.repo.attrs))
	copy(snapshot, r.repo.attrs)
	if err := fn(r.repo); err != nil {
		r.repo.attrs = snapshot
		return err
	}
	return nil
}

type fakePDF struct{}

func (fakePDF) GenerateComparisonPDF(context.Context, *dto.CompareResponse) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

type fakeImageStore struct {
	uploads int
}

func (s *fakeImageStore) Upload(_ context.Context, _ []byte, folder, filename string) (string, error) {
	s.uploads++
	return "https://img.test/" + folder + "/" + filename, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	catID   = "cat-1"
	tech1ID = "tech-1"
	tech2ID = "tech-2"
)

func newFixture() (*comparison.UseCase, *fakeAttrRepo, *fakeTechRepo, *fakeImageStore) {
	attrRepo := &fakeAttrRepo{}
	techRepo := &fakeTechRepo{techs: map[string]*entity.Technology{
		tech1ID: {ID: tech1ID, CategoryID: catID, Name: "Fénix 10", Brand: "Acme", Rating: decimal.New(45, -1)},
		tech2ID: {ID: tech2ID, CategoryID: catID, Name: "Nova X", Brand: "Umbra", Rating: decimal.New(40, -1)},
	}}
	catRepo := &fakeCatRepo{cats: map[string]*entity.Category{
		catID: {ID: catID, Name: "Smartphones"},
	}}
	images := &fakeImageStore{}
	uc := comparison.NewUseCase(attrRepo, techRepo, catRepo, &fakeTxRunner{repo: attrRepo}, fakePDF{}, images)
	return uc, attrRepo, techRepo, images
}

// addAttr agrega una fila activa directamente al repo, con created_at creciente.
func addAttr(repo *fakeAttrRepo, techID, key, value string) *entity.ComparisonAttribute {
	a := &entity.ComparisonAttribute{
		ID:           fmt.Sprintf("attr-%d", len(repo.attrs)+1),
		TechnologyID: techID,
		Key:          key,
		Value:        value,
		CreatedAt:    time.Unix(int64(1700000000+len(repo.attrs)), 0),
		UpdatedAt:    time.Unix(int64(1700000000+len(repo.attrs)), 0),
	}
	repo.attrs = append(repo.attrs, a)
	return a
}

// ──────────────────────────────────────────────────────────────────────────────
// Compare
// ──────────────────────────────────────────────────────────────────────────────

func TestCompare_UnionConMarcador(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	addAttr(attrRepo, tech1ID, "RAM", "8GB")
	addAttr(attrRepo, tech1ID, "Almacenamiento", "256GB")
	addAttr(attrRepo, tech2ID, "RAM", "12GB")
	addAttr(attrRepo, tech2ID, "Cámara", "50MP")

	out, err := uc.Compare(tech1ID, tech2ID)
	require.NoError(t, err)

	require.Len(t, out.Comparison, 3, "la unión de claves debe tener 3 filas")
	assert.Equal(t, []dto.ComparisonRow{
		{KeySpec: "RAM", Tech1Value: "8GB", Tech2Value: "12GB"},
		{KeySpec: "Almacenamiento", Tech1Value: "256GB", Tech2Value: "-"},
		{KeySpec: "Cámara", Tech1Value: "-", Tech2Value: "50MP"},
	}, out.Comparison)

	assert.Equal(t, "Fénix 10", out.Tech1.Name)
	assert.Equal(t, "Nova X", out.Tech2.Name)
	assert.Equal(t, "Smartphones", out.Tech1.Category.Name)
}

func TestCompare_SinIds_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Compare("", tech2ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompare_TecnologiaInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Compare(tech1ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompare_MismaTecnologiaDosVeces_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Compare(tech1ID, tech1ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"comparar una tecnología consigo misma no resuelve dos tecnologías")
}

func TestCompare_TecnologiaBorrada_RetornaErrNotFound(t *testing.T) {
	uc, _, techRepo, _ := newFixture()
	now := time.Now()
	techRepo.techs[tech2ID].DeletedAt = &now

	_, err := uc.Compare(tech1ID, tech2ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompare_AtributoBorradoNoAparece(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	addAttr(attrRepo, tech1ID, "RAM", "8GB")
	borrado := addAttr(attrRepo, tech1ID, "Batería", "5000mAh")
	addAttr(attrRepo, tech2ID, "RAM", "12GB")

	_, err := uc.Delete(borrado.ID)
	require.NoError(t, err)

	out, err := uc.Compare(tech1ID, tech2ID)
	require.NoError(t, err)
	require.Len(t, out.Comparison, 1, "la fila borrada no debe entrar al diff")
	assert.Equal(t, "RAM", out.Comparison[0].KeySpec)
}

func TestComparePDF_GeneraBytes(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	addAttr(attrRepo, tech1ID, "RAM", "8GB")
	addAttr(attrRepo, tech2ID, "RAM", "12GB")

	pdfBytes, err := uc.ComparePDF(context.Background(), tech1ID, tech2ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create (lote atómico)
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_LoteValido_PersisteTodo(t *testing.T) {
	uc, attrRepo, _, images := newFixture()

	out, err := uc.Create(context.Background(), dto.CreateComparisonRequest{
		TechnologyID: tech1ID,
		Keys:         []string{"RAM", "Pantalla"},
		Values:       []string{"8GB", "6.1 pulgadas"},
	}, []byte{0xFF, 0xD8}, "foto.jpg")
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Len(t, attrRepo.attrs, 2)
	assert.Equal(t, 1, images.uploads, "la imagen del lote se sube una sola vez")
	assert.Equal(t, out[0].Image, out[1].Image, "todas las filas comparten la URL")
	assert.Equal(t, "Fénix 10", out[0].Technology.Name)
	assert.Nil(t, out[0].DeletedAt)
}

func TestCreate_ParSingle_Persiste(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()

	out, err := uc.Create(context.Background(), dto.CreateComparisonRequest{
		TechnologyID: tech1ID,
		Key:          "RAM",
		Value:        "8GB",
	}, nil, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, attrRepo.attrs, 1)
}

func TestCreate_LongitudesDistintas_NoPersisteNada(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()

	_, err := uc.Create(context.Background(), dto.CreateComparisonRequest{
		TechnologyID: tech1ID,
		Keys:         []string{"RAM", "Pantalla"},
		Values:       []string{"8GB"},
	}, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, attrRepo.attrs, "la validación es previa a cualquier escritura")
}

func TestCreate_ParVacio_NoPersisteNada(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()

	_, err := uc.Create(context.Background(), dto.CreateComparisonRequest{
		TechnologyID: tech1ID,
		Keys:         []string{"RAM", ""},
		Values:       []string{"8GB", "x"},
	}, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, attrRepo.attrs)
}

func TestCreate_SinPares_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Create(context.Background(), dto.CreateComparisonRequest{TechnologyID: tech1ID}, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TecnologiaInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Create(context.Background(), dto.CreateComparisonRequest{
		TechnologyID: "no-existe",
		Key:          "RAM",
		Value:        "8GB",
	}, nil, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ClaveDuplicadaEnLote_RevierteTodo(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	addAttr(attrRepo, tech1ID, "Pantalla", "6.1 pulgadas")

	// La segunda fila del lote choca con la clave existente: el lote entero
	// debe revertirse, incluida la primera fila.
	_, err := uc.Create(context.Background(), dto.CreateComparisonRequest{
		TechnologyID: tech1ID,
		Keys:         []string{"RAM", "Pantalla"},
		Values:       []string{"8GB", "6.7 pulgadas"},
	}, nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Len(t, attrRepo.attrs, 1, "solo debe quedar la fila preexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SinCampos_RetornaErrNothingToUpdate(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	a := addAttr(attrRepo, tech1ID, "RAM", "8GB")

	_, err := uc.Update(context.Background(), a.ID, dto.UpdateComparisonRequest{}, nil, "")
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)
}

func TestUpdate_ParcheParcial_SoloTocaEsosCampos(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	a := addAttr(attrRepo, tech1ID, "RAM", "8GB")

	nuevo := "16GB"
	out, err := uc.Update(context.Background(), a.ID, dto.UpdateComparisonRequest{Value: &nuevo}, nil, "")
	require.NoError(t, err)

	assert.Equal(t, "RAM", out.Key, "la clave no cambia")
	assert.Equal(t, "16GB", out.Value)
	assert.True(t, out.UpdatedAt.After(a.UpdatedAt), "updated_at debe refrescarse")
}

func TestUpdate_ClaveVacia_RetornaErrInvalidInput(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	a := addAttr(attrRepo, tech1ID, "RAM", "8GB")

	vacia := ""
	_, err := uc.Update(context.Background(), a.ID, dto.UpdateComparisonRequest{Key: &vacia}, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _ := newFixture()
	v := "x"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateComparisonRequest{Value: &v}, nil, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_FilaSigueLegiblePorId(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	a := addAttr(attrRepo, tech1ID, "RAM", "8GB")

	deleted, err := uc.Delete(a.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt, "el borrado lógico expone deleted_at")

	// Desaparece del listado...
	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// ...pero sigue legible por id (auditoría).
	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.NotNil(t, got.DeletedAt)
}

func TestDelete_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _, _ := newFixture()
	_, err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_DosVeces_RetornaErrNotFound(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	a := addAttr(attrRepo, tech1ID, "RAM", "8GB")

	_, err := uc.Delete(a.ID)
	require.NoError(t, err)

	_, err = uc.Delete(a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el segundo borrado no encuentra fila activa")
}

func TestList_IncluyeResumenDeTecnologia(t *testing.T) {
	uc, attrRepo, _, _ := newFixture()
	addAttr(attrRepo, tech1ID, "RAM", "8GB")
	addAttr(attrRepo, tech2ID, "RAM", "12GB")

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		assert.NotEmpty(t, item.Technology.Name)
		assert.Equal(t, "Smartphones", item.Technology.Category.Name)
		assert.Nil(t, item.DeletedAt, "los listados no exponen deleted_at")
	}
}
