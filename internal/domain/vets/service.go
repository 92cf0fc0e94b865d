package vets

import (
	"context"

	"petclinic/internal/domain/model"
)

// SpecialtyRef resuelve specialties referenciadas por id.
// Lo implementa el repo de specialties.
type SpecialtyRef interface {
	FindByID(ctx context.Context, id int) (model.Specialty, error)
}

type Service struct {
	repo        Repository
	specialties SpecialtyRef
}

func NewService(repo Repository, specialties SpecialtyRef) *Service {
	return &Service{repo: repo, specialties: specialties}
}

func (s *Service) FindByID(ctx context.Context, id int) (model.Vet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.Vet, error) {
	return s.repo.FindAll(ctx)
}

// Save verifica cada specialty referenciada antes de escribir y
// refresca su nombre desde storage (el cliente solo manda ids fiables).
func (s *Service) Save(ctx context.Context, v *model.Vet) error {
	for i, sp := range v.Specialties {
		found, err := s.specialties.FindByID(ctx, sp.ID)
		if err != nil {
			return ErrUnknownSpecialty
		}
		v.Specialties[i] = found
	}
	return s.repo.Save(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
