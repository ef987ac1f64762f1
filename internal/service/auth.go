package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/security"
)

type authService struct {
	store  docstore.Store
	tokens security.TokenManager
}

func NewAuthService(store docstore.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password, name string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var result *LoginResult
	switch {
	case email == strings.ToLower(doc.Admin.Email):
		// Trivial equality against the seeded admin record.
		if password != doc.Admin.Password {
			return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
		}
		result = &LoginResult{Email: doc.Admin.Email, Name: doc.Admin.Name, Role: domain.UserRoleAdmin}

	case doc.FindUserByEmail(email) != nil:
		user := doc.FindUserByEmail(email)
		if password != user.Password {
			return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
		}
		result = &LoginResult{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}

	default:
		// First-seen email: auto-provision a user record.
		result, err = s.provision(ctx, email, password, name)
		if err != nil {
			return nil, err
		}
	}

	token, err := s.tokens.GenerateAccessToken(result.ID, result.Email, result.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	result.Token = token
	return result, nil
}

func (s *authService) provision(ctx context.Context, email, password, name string) (*LoginResult, error) {
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = email
		}
	}

	var result *LoginResult
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		// Re-check under the writer lock: a concurrent first login may have
		// created the record already. First write wins.
		if user := doc.FindUserByEmail(email); user != nil {
			if password != user.Password {
				return fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
			}
			result = &LoginResult{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}
			return nil
		}

		user := domain.User{
			ID:         doc.NextUserID(),
			Email:      email,
			Password:   password,
			Role:       domain.UserRoleUser,
			Name:       name,
			JoinedDate: time.Now().UTC().Format(time.RFC3339),
		}
		doc.Users = append(doc.Users, user)
		result = &LoginResult{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Auto-provisioned user on first login", "user_id", result.ID, "email", result.Email)
	return result, nil
}
