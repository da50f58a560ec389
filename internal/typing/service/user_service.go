package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	apperr "github.com/playtype/typing-game-service/internal/errors"
	"github.com/playtype/typing-game-service/internal/typing/domain"
	"github.com/playtype/typing-game-service/internal/typing/dto"
)

type UserService struct {
	repo       domain.UserRepository
	bcryptCost int
}

func NewUserService(repo domain.UserRepository, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperr.ErrMissingCredentials
	}

	existing, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate returns the same error for an unknown username and a wrong
// password, so the response never reveals which one failed.
func (s *UserService) Authenticate(ctx context.Context, input dto.LoginInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
