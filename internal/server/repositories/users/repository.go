package users

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository is the credential store. Create must be atomic with respect to
// email uniqueness: of any number of concurrent inserts for one email exactly
// one succeeds and the rest report common.ErrIdentityExists.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailWithSecret(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
}
