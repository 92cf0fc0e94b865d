package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/owners"
)

type ownerRepo struct {
	s *Store
}

func (s *Store) Owners() owners.Repository {
	return &ownerRepo{s: s}
}

func (r *ownerRepo) FindByID(ctx context.Context, id int) (model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return model.Owner{}, owners.ErrNotFound
	}
	o.Pets = r.s.petsOfOwner(id)
	return o, nil
}

func (r *ownerRepo) FindAll(ctx context.Context) ([]model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Owner, 0, len(r.s.owners))
	for _, o := range r.s.owners {
		o.Pets = r.s.petsOfOwner(o.ID)
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ownerRepo) FindByLastName(ctx context.Context, lastName string) ([]model.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Owner, 0)
	for _, o := range r.s.owners {
		if o.LastName == lastName {
			o.Pets = r.s.petsOfOwner(o.ID)
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ownerRepo) Save(ctx context.Context, o *model.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if o.ID == 0 {
		o.ID = r.s.nextID()
	} else if _, exists := r.s.owners[o.ID]; !exists {
		return owners.ErrNotFound
	}

	stored := *o
	stored.Pets = nil // pets viven en su propia tabla
	r.s.owners[o.ID] = stored
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return owners.ErrNotFound
	}

	// Cascada: visits de los pets del owner, pets, owner.
	for pid, rec := range r.s.pets {
		if rec.OwnerID != id {
			continue
		}
		for vid, v := range r.s.visits {
			if v.PetID == pid {
				delete(r.s.visits, vid)
			}
		}
		delete(r.s.pets, pid)
	}
	delete(r.s.owners, id)
	return nil
}
