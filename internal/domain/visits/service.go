package visits

import (
	"context"

	"petclinic/internal/domain/model"
)

// PetRef resuelve el pet padre de una visit. Lo implementa el repo de pets.
type PetRef interface {
	FindByID(ctx context.Context, id int) (model.Pet, error)
}

type Service struct {
	repo Repository
	pets PetRef
}

func NewService(repo Repository, pets PetRef) *Service {
	return &Service{repo: repo, pets: pets}
}

func (s *Service) FindByID(ctx context.Context, id int) (model.Visit, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.Visit, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindByPetID(ctx context.Context, petID int) ([]model.Visit, error) {
	return s.repo.FindByPetID(ctx, petID)
}

// Save rechaza visits que referencien un pet inexistente.
func (s *Service) Save(ctx context.Context, v *model.Visit) error {
	if _, err := s.pets.FindByID(ctx, v.PetID); err != nil {
		return ErrUnknownPet
	}
	return s.repo.Save(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
