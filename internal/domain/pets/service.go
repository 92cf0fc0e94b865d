package pets

import (
	"context"

	"petclinic/internal/domain/model"
)

// OwnerRef y TypeRef resuelven las referencias padre de un pet.
// Los implementan los repos de owners y pettypes.
type OwnerRef interface {
	FindByID(ctx context.Context, id int) (model.Owner, error)
}

type TypeRef interface {
	FindByID(ctx context.Context, id int) (model.PetType, error)
}

type Service struct {
	repo   Repository
	owners OwnerRef
	types  TypeRef
}

func NewService(repo Repository, owners OwnerRef, types TypeRef) *Service {
	return &Service{repo: repo, owners: owners, types: types}
}

func (s *Service) FindByID(ctx context.Context, id int) (model.Pet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.Pet, error) {
	return s.repo.FindAll(ctx)
}

// Save verifica que el owner y el type referenciados existan antes de
// escribir. Referencia colgante => error de validación, nunca un row
// huérfano. El type se refresca desde storage (el cliente manda el id).
func (s *Service) Save(ctx context.Context, p *model.Pet) error {
	if _, err := s.owners.FindByID(ctx, p.OwnerID); err != nil {
		return ErrUnknownOwner
	}

	if p.Type != nil {
		t, err := s.types.FindByID(ctx, p.Type.ID)
		if err != nil {
			return ErrUnknownType
		}
		p.Type = &t
	}

	return s.repo.Save(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
