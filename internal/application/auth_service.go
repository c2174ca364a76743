package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/helpers"
	"github.com/martify/martify/pkg/mailer"
	mailtpl "github.com/martify/martify/pkg/mailer/templates"
)

// AuthService implements signup, login, and profile lookup. Tokens carry the
// caller's id, email, and role; nothing is stored server-side per session.
type AuthService struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, Logger: logger, AppName: appName}
}

// Signup creates a user account with the default role and issues a token.
// A duplicate email surfaces as repository.ErrConflict.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{Name: name, Email: email, PasswordHash: hash, Role: entity.RoleUser}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.JWT.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}

	s.publishWelcomeEmail(ctx, u)
	return u, token, nil
}

// Login verifies credentials and issues a token. Both an unknown email and a
// wrong password surface as ErrInvalidCredentials; any other store failure
// passes through so it is logged and reported as a server error, not a 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.JWT.GenerateToken(u.ID, u.Email, u.Role)
}

// Profile returns the authenticated caller's account.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*entity.User, error) {
	return s.Users.GetByID(ctx, userID)
}

func (s *AuthService) publishWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data: map[string]any{
			"Name":    u.Name,
			"Email":   u.Email,
			"AppName": s.AppName,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email publish failed")
	}
}
