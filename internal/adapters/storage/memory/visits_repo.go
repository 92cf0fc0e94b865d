package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/visits"
)

type visitRepo struct {
	s *Store
}

func (s *Store) Visits() visits.Repository {
	return &visitRepo{s: s}
}

func (r *visitRepo) FindByID(ctx context.Context, id int) (model.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.visits[id]
	if !ok {
		return model.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitRepo) FindAll(ctx context.Context) ([]model.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Visit, 0, len(r.s.visits))
	for _, v := range r.s.visits {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *visitRepo) FindByPetID(ctx context.Context, petID int) ([]model.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.visitsOfPet(petID), nil
}

func (r *visitRepo) Save(ctx context.Context, v *model.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v.ID == 0 {
		v.ID = r.s.nextID()
	} else if _, exists := r.s.visits[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.s.visits[v.ID] = *v
	return nil
}

func (r *visitRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.visits[id]; !ok {
		return visits.ErrNotFound
	}
	delete(r.s.visits, id)
	return nil
}
