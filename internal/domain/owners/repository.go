package owners

import (
	"context"
	"errors"

	"petclinic/internal/domain/model"
)

var ErrNotFound = errors.New("owner not found")

type Repository interface {
	// FindByID devuelve el owner con sus pets (cada pet con su type).
	FindByID(ctx context.Context, id int) (model.Owner, error)
	FindAll(ctx context.Context) ([]model.Owner, error)
	// Match exacto sobre lastName.
	FindByLastName(ctx context.Context, lastName string) ([]model.Owner, error)
	// Save es upsert: id cero inserta y deja el id asignado en o.
	Save(ctx context.Context, o *model.Owner) error
	// Delete elimina también pets del owner y visits de esos pets.
	Delete(ctx context.Context, id int) error
}
