package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/vets"
)

type vetRepo struct {
	s *Store
}

func (s *Store) Vets() vets.Repository {
	return &vetRepo{s: s}
}

func (r *vetRepo) FindByID(ctx context.Context, id int) (model.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.vets[id]
	if !ok {
		return model.Vet{}, vets.ErrNotFound
	}
	return r.s.vetFromRec(rec), nil
}

func (r *vetRepo) FindAll(ctx context.Context) ([]model.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Vet, 0, len(r.s.vets))
	for _, rec := range r.s.vets {
		out = append(out, r.s.vetFromRec(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *vetRepo) Save(ctx context.Context, v *model.Vet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v.ID == 0 {
		v.ID = r.s.nextID()
	} else if _, exists := r.s.vets[v.ID]; !exists {
		return vets.ErrNotFound
	}

	rec := vetRec{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		SpecialtyIDs: make([]int, 0, len(v.Specialties)),
	}
	for _, sp := range v.Specialties {
		rec.SpecialtyIDs = append(rec.SpecialtyIDs, sp.ID)
	}
	r.s.vets[v.ID] = rec
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[id]; !ok {
		return vets.ErrNotFound
	}
	delete(r.s.vets, id)
	return nil
}
