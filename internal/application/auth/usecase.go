package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
	"github.com/jhoicas/chilaquiles-api/internal/application/validation"
	"github.com/jhoicas/chilaquiles-api/internal/domain"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
	"github.com/jhoicas/chilaquiles-api/pkg/password"
)

// TokenIssuer emite tokens firmados; lo implementa *jwt.Manager.
type TokenIssuer interface {
	Generate(userID int64, role string) (string, error)
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil y verificación de rol admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// NewUser valida la entrada de registro y construye el usuario activo con la contraseña hasheada.
// Lo comparten el registro público y el alta administrativa.
func NewUser(in dto.RegisterRequest) (*entity.User, error) {
	fullName := validation.Clean(in.FullName)
	username := validation.Clean(in.Username)
	if validation.AnyBlank(fullName, username, in.Password) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	return &entity.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         entity.NormalizeRole(in.Role),
		IsActive:     true,
	}, nil
}

// Register crea una cuenta. Devuelve ErrUsernameExists si el username ya está tomado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	user, err := NewUser(in)
	if err != nil {
		return err
	}
	existing, err := uc.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameExists
	}
	_, err = uc.userRepo.Create(ctx, user)
	return err
}

// Login verifica credenciales y emite un token. Usuario inexistente, contraseña
// incorrecta y cuenta inactiva devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := validation.Clean(in.Username)
	if validation.AnyBlank(username, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// igualar el costo de un bcrypt real para no delatar usuarios inexistentes
		password.Verify(dummyHash(), in.Password)
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(user.PasswordHash, in.Password) || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	role := entity.NormalizeRole(user.Role)
	token, err := uc.tokens.Generate(user.ID, role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{OK: true, Role: role, Token: token}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MeResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     entity.NormalizeRole(user.Role),
	}, nil
}

// AuthorizeAdmin relee el rol actual del usuario en la base de datos y exige admin.
// El rol del token no se usa: un cambio de rol aplica en la siguiente petición.
// Usuario inexistente o inactivo también es ErrForbidden.
func (uc *AuthUseCase) AuthorizeAdmin(ctx context.Context, userID int64) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive || !entity.IsAdminRole(user.Role) {
		return domain.ErrForbidden
	}
	return nil
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() {
		dummy, _ = password.Hash("chilaquiles-dummy-password")
	})
	return dummy
}
