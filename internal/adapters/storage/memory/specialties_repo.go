package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/specialties"
)

type specialtyRepo struct {
	s *Store
}

func (s *Store) Specialties() specialties.Repository {
	return &specialtyRepo{s: s}
}

func (r *specialtyRepo) FindByID(ctx context.Context, id int) (model.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.specialties[id]
	if !ok {
		return model.Specialty{}, specialties.ErrNotFound
	}
	return sp, nil
}

func (r *specialtyRepo) FindAll(ctx context.Context) ([]model.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Specialty, 0, len(r.s.specialties))
	for _, sp := range r.s.specialties {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *specialtyRepo) Save(ctx context.Context, sp *model.Specialty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sp.ID == 0 {
		sp.ID = r.s.nextID()
	} else if _, exists := r.s.specialties[sp.ID]; !exists {
		return specialties.ErrNotFound
	}
	r.s.specialties[sp.ID] = *sp
	return nil
}

// Delete saca primero la specialty del set de cada vet (join table) y
// después la fila.
func (r *specialtyRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.specialties[id]; !ok {
		return specialties.ErrNotFound
	}

	for vid, rec := range r.s.vets {
		kept := rec.SpecialtyIDs[:0]
		for _, sid := range rec.SpecialtyIDs {
			if sid != id {
				kept = append(kept, sid)
			}
		}
		rec.SpecialtyIDs = kept
		r.s.vets[vid] = rec
	}
	delete(r.s.specialties, id)
	return nil
}
