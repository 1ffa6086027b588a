package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/techreview-api/internal/application/dto"
	"github.com/tu-usuario/techreview-api/internal/application/ports"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de perfil propio y administración de usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	images ports.ImageStore
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, images ports.ImageStore) *UserUseCase {
	return &UserUseCase{repo: repo, images: images}
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza nombre/password/foto del usuario autenticado;
// campos nil no se tocan.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest, image []byte, imageName string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name == nil && in.Password == nil && len(image) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		user.Name = *in.Name
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, fmt.Errorf("%w: el password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if len(image) > 0 {
		url, err := uc.images.Upload(ctx, image, "profile", imageName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		user.ProfileImage = url
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista los usuarios activos (vista admin).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Delete marca un usuario con borrado lógico (vista admin).
func (uc *UserUseCase) Delete(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
