package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

func (s *Store) Pets() pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) FindByID(ctx context.Context, id int) (model.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.pets[id]
	if !ok {
		return model.Pet{}, pets.ErrNotFound
	}
	return r.s.petFromRec(rec, true), nil
}

func (r *petRepo) FindAll(ctx context.Context) ([]model.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Pet, 0, len(r.s.pets))
	for _, rec := range r.s.pets {
		out = append(out, r.s.petFromRec(rec, false))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) Save(ctx context.Context, p *model.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.s.nextID()
	} else if _, exists := r.s.pets[p.ID]; !exists {
		return pets.ErrNotFound
	}

	rec := petRec{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		OwnerID:   p.OwnerID,
	}
	if p.Type != nil {
		rec.TypeID = p.Type.ID
	}
	r.s.pets[p.ID] = rec
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pets.ErrNotFound
	}

	// Primero las visits del pet, después el pet.
	for vid, v := range r.s.visits {
		if v.PetID == id {
			delete(r.s.visits, vid)
		}
	}
	delete(r.s.pets, id)
	return nil
}
