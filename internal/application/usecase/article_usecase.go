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

// ArticleUseCase casos de uso CRUD y búsqueda para artículos editoriales.
type ArticleUseCase struct {
	repo     repository.ArticleRepository
	techRepo repository.TechnologyRepository
	catRepo  repository.CategoryRepository
	userRepo repository.UserRepository
	images   ports.ImageStore
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(
	repo repository.ArticleRepository,
	techRepo repository.TechnologyRepository,
	catRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	images ports.ImageStore,
) *ArticleUseCase {
	return &ArticleUseCase{repo: repo, techRepo: techRepo, catRepo: catRepo, userRepo: userRepo, images: images}
}

// Create crea un artículo firmado por el admin autenticado; la portada es opcional.
func (uc *ArticleUseCase) Create(ctx context.Context, authorID string, in dto.CreateArticleRequest, image []byte, imageName string) (*dto.ArticleResponse, error) {
	if in.Title == "" || in.Content == "" || in.TechnologyID == "" {
		return nil, fmt.Errorf("%w: title, content y technology_id son requeridos", domain.ErrInvalidInput)
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
		url, err := uc.images.Upload(ctx, image, "article", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		imageURL = url
	}
	now := time.Now()
	article := &entity.Article{
		ID:           uuid.New().String(),
		UserID:       authorID,
		TechnologyID: in.TechnologyID,
		Title:        in.Title,
		Content:      in.Content,
		Excerpt:      in.Excerpt,
		Image:        imageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return uc.respond(article)
}

// GetByID obtiene un artículo activo por id.
func (uc *ArticleUseCase) GetByID(id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil || article.DeletedAt != nil {
		return nil, fmt.Errorf("%w: artículo no encontrado", domain.ErrNotFound)
	}
	return uc.respond(article)
}

// List lista los artículos activos en la forma compacta del frontend.
func (uc *ArticleUseCase) List() ([]dto.ArticleListItem, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return uc.respondList(list)
}

// Search busca artículos activos por título. Query vacío es entrada inválida.
func (uc *ArticleUseCase) Search(query string) ([]dto.ArticleListItem, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: el query de búsqueda es requerido", domain.ErrInvalidInput)
	}
	list, err := uc.repo.SearchActiveByTitle(query)
	if err != nil {
		return nil, err
	}
	return uc.respondList(list)
}

// Update actualiza un artículo; campos nil no se tocan.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in dto.UpdateArticleRequest, image []byte, imageName string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil || article.DeletedAt != nil {
		return nil, fmt.Errorf("%w: artículo no encontrado", domain.ErrNotFound)
	}
	if in.Title == nil && in.Content == nil && in.Excerpt == nil && in.TechnologyID == nil && len(image) == 0 {
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
		article.TechnologyID = *in.TechnologyID
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: el título no puede quedar vacío", domain.ErrInvalidInput)
		}
		article.Title = *in.Title
	}
	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.Excerpt != nil {
		article.Excerpt = *in.Excerpt
	}
	if len(image) > 0 {
		url, err := uc.images.Upload(ctx, image, "article", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		article.Image = url
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(article); err != nil {
		return nil, err
	}
	return uc.respond(article)
}

// Delete marca el artículo con borrado lógico.
func (uc *ArticleUseCase) Delete(id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, fmt.Errorf("%w: artículo no encontrado", domain.ErrNotFound)
	}
	return uc.respond(article)
}

// authorAndCategory resuelve el nombre del autor y el de la categoría de la
// tecnología asociada; tolera referencias colgantes devolviendo vacío.
func (uc *ArticleUseCase) authorAndCategory(a *entity.Article) (author, category string, err error) {
	user, err := uc.userRepo.GetByID(a.UserID)
	if err != nil {
		return "", "", err
	}
	if user != nil {
		author = user.Name
	}
	tech, err := uc.techRepo.GetByID(a.TechnologyID)
	if err != nil {
		return "", "", err
	}
	if tech != nil {
		cat, err := uc.catRepo.GetByID(tech.CategoryID)
		if err != nil {
			return "", "", err
		}
		if cat != nil {
			category = cat.Name
		}
	}
	return author, category, nil
}

func (uc *ArticleUseCase) respond(a *entity.Article) (*dto.ArticleResponse, error) {
	author, category, err := uc.authorAndCategory(a)
	if err != nil {
		return nil, err
	}
	return &dto.ArticleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Content:  a.Content,
		Excerpt:  a.Excerpt,
		Image:    a.Image,
		Author:   author,
		Category: category,
		Date:     a.CreatedAt.Format("2006-01-02"),
	}, nil
}

func (uc *ArticleUseCase) respondList(list []*entity.Article) ([]dto.ArticleListItem, error) {
	out := make([]dto.ArticleListItem, 0, len(list))
	for _, a := range list {
		author, category, err := uc.authorAndCategory(a)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ArticleListItem{
			ID:        a.ID,
			Title:     a.Title,
			Thumbnail: a.Image,
			Author:    author,
			Category:  category,
			Date:      a.CreatedAt.Format("2006-01-02"),
			Excerpt:   a.Excerpt,
		})
	}
	return out, nil
}
