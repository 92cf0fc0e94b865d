// Package memory implementa los repos de todas las entidades sobre un
// único Store en memoria. Sirve para modo dev y tests; un solo RWMutex
// cubre todas las tablas porque las cascadas cruzan entidades.
package memory

import (
	"sort"
	"sync"

	"petclinic/internal/domain/model"
)

// Registros internos: referencias por id, igual que en el schema
// relacional. Las entidades se ensamblan al leer.
type petRec struct {
	ID        int
	Name      string
	BirthDate *model.Date
	TypeID    int
	OwnerID   int
}

type vetRec struct {
	ID           int
	FirstName    string
	LastName     string
	SpecialtyIDs []int
}

type Store struct {
	mu  sync.RWMutex
	seq int

	owners      map[int]model.Owner // sin pets; se arman al leer
	pets        map[int]petRec
	petTypes    map[int]model.PetType
	specialties map[int]model.Specialty
	vets        map[int]vetRec
	visits      map[int]model.Visit
	users       map[string]model.User
}

func NewStore() *Store {
	return &Store{
		owners:      make(map[int]model.Owner),
		pets:        make(map[int]petRec),
		petTypes:    make(map[int]model.PetType),
		specialties: make(map[int]model.Specialty),
		vets:        make(map[int]vetRec),
		visits:      make(map[int]model.Visit),
		users:       make(map[string]model.User),
	}
}

// nextID requiere el lock de escritura tomado.
func (s *Store) nextID() int {
	s.seq++
	return s.seq
}

// ---- ensamblado (requieren al menos read lock) ----

func (s *Store) petFromRec(rec petRec, withVisits bool) model.Pet {
	p := model.Pet{
		ID:        rec.ID,
		Name:      rec.Name,
		BirthDate: rec.BirthDate,
		OwnerID:   rec.OwnerID,
	}
	if t, ok := s.petTypes[rec.TypeID]; ok {
		p.Type = &t
	}
	if withVisits {
		p.Visits = s.visitsOfPet(rec.ID)
	}
	return p
}

func (s *Store) petsOfOwner(ownerID int) []model.Pet {
	out := make([]model.Pet, 0)
	for _, rec := range s.pets {
		if rec.OwnerID == ownerID {
			out = append(out, s.petFromRec(rec, false))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) visitsOfPet(petID int) []model.Visit {
	out := make([]model.Visit, 0)
	for _, v := range s.visits {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) vetFromRec(rec vetRec) model.Vet {
	v := model.Vet{
		ID:          rec.ID,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Specialties: make([]model.Specialty, 0, len(rec.SpecialtyIDs)),
	}
	for _, id := range rec.SpecialtyIDs {
		if sp, ok := s.specialties[id]; ok {
			v.Specialties = append(v.Specialties, sp)
		}
	}
	return v
}
