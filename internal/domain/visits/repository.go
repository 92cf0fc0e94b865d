package visits

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var (
	ErrNotFound = errors.New("visit not found")

	ErrUnknownPet = errors.New("unknown pet")
)

type Repository interface {
	FindByID(ctx context.Context, id int) (model.Visit, error)
	FindAll(ctx context.Context) ([]model.Visit, error)
	FindByPetID(ctx context.Context, petID int) ([]model.Visit, error)
	Save(ctx context.Context, v *model.Visit) error
	Delete(ctx context.Context, id int) error
}
