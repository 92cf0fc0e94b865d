package pets

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var (
	ErrNotFound = errors.New("pet not found")

	ErrUnknownOwner = errors.New("unknown owner")
	ErrUnknownType  = errors.New("unknown pet type")
)

type Repository interface {
	// FindByID devuelve el pet con su type y sus visits.
	FindByID(ctx context.Context, id int) (model.Pet, error)
	FindAll(ctx context.Context) ([]model.Pet, error)
	Save(ctx context.Context, p *model.Pet) error
	// Delete borra primero las visits del pet (cleanup referencial
	// explícito) y después el pet, en una transacción.
	Delete(ctx context.Context, id int) error
}
