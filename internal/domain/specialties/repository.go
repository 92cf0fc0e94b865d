package specialties

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var ErrNotFound = errors.New("specialty not found")

type Repository interface {
	FindByID(ctx context.Context, id int) (model.Specialty, error)
	FindAll(ctx context.Context) ([]model.Specialty, error)
	Save(ctx context.Context, sp *model.Specialty) error
	// Delete remueve primero las filas de vet_specialties que la
	// referencian y después la specialty.
	Delete(ctx context.Context, id int) error
}
