// Package services contains server-side business logic. This file implements
// UserService, which turns passwords into stored identities and checks
// credentials against them.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

// RegisterInput carries a registration request. Password is plaintext and is
// never stored or logged.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UserService provides credential operations:
// - Register: hash the password and create the user
// - Authenticate: check an email/password pair
// - ListAll / Lookup: read public views
type UserService struct {
	repo   users.Repository
	cost   int
	logger logging.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserService constructs a UserService. A non-positive cost selects
// DefaultBcryptCost.
func NewUserService(repo users.Repository, cost int, logger logging.Logger) *UserService {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &UserService{repo: repo, cost: cost, logger: logger.With("module", "services.user")}
}

// Register creates a user. A duplicate email yields common.ErrIdentityExists;
// empty fields yield common.ErrorValidation; anything else wraps
// common.ErrorInternal.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, err)
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrIdentityExists) {
			s.logger.Info(ctx, "registration rejected, email taken", "email", in.Email)
			return nil, common.ErrIdentityExists
		}
		s.logger.Error(ctx, "error creating user", "email", in.Email, "error", err)
		return nil, fmt.Errorf("%w: error creating user: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "user registered", "email", created.Email, "id", created.ID)
	p := created.Public()
	return &p, nil
}

// Authenticate returns the user's public view when password matches the stored
// hash. It never fails: an unknown email, a store error and a wrong password
// all report false.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.PublicUser, bool) {
	user, err := s.repo.FindByEmailWithSecret(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "error loading user", "email", email, "error", err)
		}
		// keep timing close to the found-user path
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, false
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Info(ctx, "login rejected", "email", email)
		return nil, false
	}

	p := user.Public()
	return &p, true
}

// ListAll returns every user's public view in store order.
func (s *UserService) ListAll(ctx context.Context) ([]models.PublicUser, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing users: %v", common.ErrorInternal, err)
	}

	result := make([]models.PublicUser, 0, len(all))
	for _, u := range all {
		result = append(result, u.Public())
	}
	return result, nil
}

// Lookup returns the public view of the user with the given email.
func (s *UserService) Lookup(ctx context.Context, email string) (*models.PublicUser, bool) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "error loading user", "email", email, "error", err)
		}
		return nil, false
	}
	p := user.Public()
	return &p, true
}

func (s *UserService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("authgate-timing-placeholder"), s.cost)
	})
	return s.dummyHash
}
