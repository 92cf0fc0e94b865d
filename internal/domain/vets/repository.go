package vets

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var (
	ErrNotFound = errors.New("vet not found")

	// ErrUnknownSpecialty: el vet referencia una specialty inexistente.
	ErrUnknownSpecialty = errors.New("unknown specialty")
)

type Repository interface {
	// FindByID devuelve el vet con su set de specialties.
	FindByID(ctx context.Context, id int) (model.Vet, error)
	FindAll(ctx context.Context) ([]model.Vet, error)
	// Save es upsert y reemplaza el set completo de specialties
	// (vet_specialties se borra y se reinserta) en una transacción.
	Save(ctx context.Context, v *model.Vet) error
	// Delete remueve primero las filas de vet_specialties del vet.
	Delete(ctx context.Context, id int) error
}
