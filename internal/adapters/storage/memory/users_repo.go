package memory

import (
	"context"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/users"
)

type userRepo struct {
	s *Store
}

func (s *Store) Users() users.Repository {
	return &userRepo{s: s}
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[username]
	if !ok {
		return model.User{}, users.ErrNotFound
	}
	// Copia de roles para que el caller no mute el mapa.
	u.Roles = append([]model.Role(nil), u.Roles...)
	return u, nil
}

func (r *userRepo) Save(ctx context.Context, u model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.Roles = append([]model.Role(nil), u.Roles...)
	r.s.users[u.Username] = u
	return nil
}
