// Package model define las entidades persistidas de la clínica.
// Todas llevan id numérico asignado por storage, salvo User
// (clave natural: username).
package model

// RolePrefix se antepone al nombre de cada rol al guardar un usuario.
const RolePrefix = "ROLE_"

type Owner struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	Telephone string `json:"telephone" validate:"required,numeric,max=10"`
	Pets      []Pet  `json:"pets"`
}

type Pet struct {
	ID        int      `json:"id"`
	Name      string   `json:"name" validate:"required"`
	BirthDate *Date    `json:"birthDate"`
	Type      *PetType `json:"type" validate:"required"`
	OwnerID   int      `json:"ownerId" validate:"required"`
	Visits    []Visit  `json:"visits,omitempty"`
}

type PetType struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

type Specialty struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required"`
}

type Vet struct {
	ID          int         `json:"id"`
	FirstName   string      `json:"firstName" validate:"required"`
	LastName    string      `json:"lastName" validate:"required"`
	Specialties []Specialty `json:"specialties"`
}

type Visit struct {
	ID          int    `json:"id"`
	Date        *Date  `json:"date"`
	Description string `json:"description" validate:"required"`
	PetID       int    `json:"petId" validate:"required"`
}

// User usa username como clave primaria. Password nunca se serializa
// en respuestas: los handlers la limpian antes de responder.
type User struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
	Enabled  bool   `json:"enabled"`
	Roles    []Role `json:"roles" validate:"min=1,dive"`
}

type Role struct {
	Name string `json:"name" validate:"required"`
}
