package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/pettypes"
)

type petTypeRepo struct {
	s *Store
}

func (s *Store) PetTypes() pettypes.Repository {
	return &petTypeRepo{s: s}
}

func (r *petTypeRepo) FindByID(ctx context.Context, id int) (model.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.petTypes[id]
	if !ok {
		return model.PetType{}, pettypes.ErrNotFound
	}
	return t, nil
}

func (r *petTypeRepo) FindAll(ctx context.Context) ([]model.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.PetType, 0, len(r.s.petTypes))
	for _, t := range r.s.petTypes {
		out = append(out, t)
	}
	// Orden por nombre: contrato del listado de tipos.
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *petTypeRepo) Save(ctx context.Context, t *model.PetType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t.ID == 0 {
		t.ID = r.s.nextID()
	} else if _, exists := r.s.petTypes[t.ID]; !exists {
		return pettypes.ErrNotFound
	}
	r.s.petTypes[t.ID] = *t
	return nil
}

func (r *petTypeRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.petTypes[id]; !ok {
		return pettypes.ErrNotFound
	}
	delete(r.s.petTypes, id)
	return nil
}
