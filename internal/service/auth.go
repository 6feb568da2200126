package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/idudina/library-service/internal/errs"
	"github.com/idudina/library-service/internal/model"
	"github.com/idudina/library-service/internal/repository"
	"github.com/idudina/library-service/pkg/auth"
)

// AuthService registers users and issues access tokens.
type AuthService struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewAuthService(repo repository.Repository, log *zap.Logger) *AuthService {
	return &AuthService{
		log:  log,
		repo: repo,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	if missing := req.Address.MissingKeys(); len(missing) > 0 {
		return model.User{}, errs.FieldValidation("address", "must contain the keys: %s", strings.Join(missing, ", "))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleMember
	}

	return s.repo.CreateUser(ctx, model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         req.Name,
		Birthdate:    req.Birthdate,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
	})
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return model.AuthResponse{}, errs.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrUnauthenticated
	}

	token, expiresAt, err := auth.NewToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   expiresAt,
	}, nil
}
