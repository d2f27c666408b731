package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/matrikabazaar/marketplace-api/internal/domain/entity"
	repo "github.com/matrikabazaar/marketplace-api/internal/domain/repository"
	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
)

var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Identity is the authenticated id+role pair asserted by a verified
// token, passed explicitly into every gated operation.
type Identity struct {
	ID   string
	Role entity.Role
}

// AuthService handles registration and login. It is the only consumer
// of the password hasher; login is the only issuer of tokens.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// Register hashes the password and persists a new user. Role defaults
// to "user" when omitted. Email uniqueness is enforced by the store;
// the loser of a concurrent duplicate race gets ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Error("user create failed")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a token asserting the user's
// current id+role pair. Unknown email and wrong password stay distinct
// failures, matching the contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, "", err
	}
	return u, token, nil
}
