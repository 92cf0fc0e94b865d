package users

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrNoRoles corta el save antes de tocar storage.
	ErrNoRoles = errors.New("user must have at least a role set")

	ErrBadCredentials = errors.New("bad credentials")
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	// Save es upsert por username (clave natural, sin id sustituto).
	Save(ctx context.Context, u model.User) error
}
