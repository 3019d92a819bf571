package api

import (
	"context"

	"github.com/rpupo63/portfolio-showcase-backend/database"
	"github.com/rpupo63/portfolio-showcase-backend/errs"
	"github.com/rpupo63/portfolio-showcase-backend/models"
)

// Principal resolves the user on whose behalf admin actions run. An
// auth collaborator can supply a real implementation; the default one
// below serves single-owner deployments where no login exists.
type Principal interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

type singleOwnerPrincipal struct {
	userRepo *database.UserRepo
}

// NewSingleOwnerPrincipal returns a Principal that treats the oldest
// user row as the acting user.
func NewSingleOwnerPrincipal(userRepo *database.UserRepo) Principal {
	return singleOwnerPrincipal{userRepo: userRepo}
}

func (p singleOwnerPrincipal) CurrentUser(_ context.Context) (*models.User, error) {
	user, err := p.userRepo.First()
	if err != nil {
		return nil, errs.NewStorageError("Failed to resolve user.", nil, err)
	}
	if user == nil {
		return nil, errs.NewDependencyMissingError("No user found. Create a user first.")
	}
	return user, nil
}
