package pettypes

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var ErrNotFound = errors.New("pet type not found")

type Repository interface {
	FindByID(ctx context.Context, id int) (model.PetType, error)
	// FindAll devuelve los tipos ordenados por nombre.
	FindAll(ctx context.Context) ([]model.PetType, error)
	Save(ctx context.Context, t *model.PetType) error
	Delete(ctx context.Context, id int) error
}
