package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/validate"
	"github.com/dmitrijs2005/eventclient/internal/common"
	"github.com/dmitrijs2005/eventclient/internal/server/auth"
	"github.com/dmitrijs2005/eventclient/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	cost                  int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		cost:                  bcrypt.DefaultCost,
	}
}

// Register creates the account and signs it in.
func (s *Service) Register(ctx context.Context, username, email, password string) (string, error) {
	if err := errors.Join(
		validate.String("username", username, validate.Username),
		validate.Email("email", email),
		validate.String("password", password, validate.Password),
	); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInvalidArgument, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &User{
		UserName:     username,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  username,
	})
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateAccessToken(user)
}

func (s *Service) Login(ctx context.Context, userName, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	return s.generateAccessToken(user)
}

// ResetPassword accepts any well-formed address so callers cannot probe
// which emails are registered. No mail is sent by the development server.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if err := validate.Email("email", email); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInvalidArgument, err)
	}
	_, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}
	return nil
}

// Authenticate resolves an access token to its user ID.
func (s *Service) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) Edit(ctx context.Context, id string, p Patch) (*User, error) {
	if err := validatePatch(p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidArgument, err)
	}

	return s.repo.Update(ctx, id, func(u *User) error {
		if p.UserName != nil {
			u.UserName = *p.UserName
		}
		if p.DisplayName != nil {
			u.DisplayName = *p.DisplayName
		}
		if p.Bio != nil {
			u.Bio = *p.Bio
		}
		if p.FavouriteTags != nil {
			u.FavouriteTags = p.FavouriteTags
		}
		if p.Avatar != nil {
			u.Avatar = p.Avatar
		}
		return nil
	})
}

// SetCurrentEvent records where the user is checked in; "" clears it.
func (s *Service) SetCurrentEvent(ctx context.Context, id, eventID string) error {
	_, err := s.repo.Update(ctx, id, func(u *User) error {
		u.CurrentEventID = eventID
		return nil
	})
	return err
}

func (s *Service) generateAccessToken(user *User) (string, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func validatePatch(p Patch) error {
	var errs []error
	if p.UserName != nil {
		errs = append(errs, validate.String("username", *p.UserName, validate.Username))
	}
	if p.DisplayName != nil {
		errs = append(errs, validate.String("displayName", *p.DisplayName, validate.DisplayName))
	}
	if p.Bio != nil {
		errs = append(errs, validate.String("bio", *p.Bio, validate.Bio))
	}
	return errors.Join(errs...)
}
