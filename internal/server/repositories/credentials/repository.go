// Package credentials stores registered users keyed by username.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/authservice/internal/server/models"
)

// Repository is the Credential Store contract.
type Repository interface {
	// Put inserts user atomically. It returns common.ErrorAlreadyExists if
	// the username is taken and never overwrites an existing record.
	// The returned user carries the assigned ID and CreatedAt.
	Put(ctx context.Context, user *models.User) (*models.User, error)

	// Get returns the user or common.ErrorNotFound.
	Get(ctx context.Context, userName string) (*models.User, error)

	Exists(ctx context.Context, userName string) (bool, error)
}
