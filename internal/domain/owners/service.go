package owners

import (
	"context"

	"petclinic/internal/domain/model"
)

// Service es el punto de paso entre handlers y storage. Sin lógica de
// negocio: los checks de existencia y el copiado de campos en updates
// viven en los handlers, igual que en el resto de módulos.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindByID(ctx context.Context, id int) (model.Owner, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]model.Owner, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindByLastName(ctx context.Context, lastName string) ([]model.Owner, error) {
	return s.repo.FindByLastName(ctx, lastName)
}

func (s *Service) Save(ctx context.Context, o *model.Owner) error {
	return s.repo.Save(ctx, o)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
