package pettypes

import (
	"context"

	"petclinic/internal/domain/model"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindByID(ctx context.Context, id int) (model.PetType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.PetType, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Save(ctx context.Context, t *model.PetType) error {
	return s.repo.Save(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
