package pets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/pettypes"
	"petclinic/internal/domain/visits"
	"petclinic/internal/middleware"
	"petclinic/internal/validation"
	"petclinic/internal/web"
)

func RegisterRoutes(r chi.Router, svc *Service, typesSvc *pettypes.Service, visitsSvc *visits.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Use(middleware.RequireRole(middleware.RoleOwnerAdmin))

		pr.Get("/", listPetsHandler(svc))
		// Atajo histórico del API: los tipos disponibles al dar de
		// alta un pet, sin pasar por /api/pettypes.
		pr.Get("/pettypes", listPetTypesHandler(typesSvc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Get("/{petID}/visits", listPetVisitsHandler(svc, visitsSvc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		if len(items) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func listPetTypesHandler(typesSvc *pettypes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := typesSvc.FindAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		// A diferencia de los list de entidades, acá vacío es 200 [].
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		p, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, p)
	}
}

func listPetVisitsHandler(svc *Service, visitsSvc *visits.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, err := svc.FindByID(r.Context(), id); err != nil {
			writeLookupError(w, err)
			return
		}

		items, err := visitsSvc.FindByPetID(r.Context(), id)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Pet
		if err := web.Decode(r, &p); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(p); errs != nil {
			web.WriteValidationErrors(w, p, errs)
			return
		}

		p.ID = 0
		if err := svc.Save(r.Context(), &p); err != nil {
			writeSaveError(w, p, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, p)
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Pet
		if err := web.Decode(r, &p); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(p); errs != nil {
			web.WriteValidationErrors(w, p, errs)
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		current, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		// Copy-set: name, birthDate, type y owner; visits se preservan.
		current.Name = p.Name
		current.BirthDate = p.BirthDate
		current.Type = p.Type
		current.OwnerID = p.OwnerID

		if err := svc.Save(r.Context(), &current); err != nil {
			writeSaveError(w, current, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, err := svc.FindByID(r.Context(), id); err != nil {
			writeLookupError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeSaveError(w http.ResponseWriter, p model.Pet, err error) {
	switch {
	case errors.Is(err, ErrUnknownOwner):
		web.WriteValidationErrors(w, p, map[string]string{
			"ownerId": "references an unknown owner",
		})
	case errors.Is(err, ErrUnknownType):
		web.WriteValidationErrors(w, p, map[string]string{
			"type": "references an unknown pet type",
		})
	default:
		web.WriteError(w, http.StatusInternalServerError, err)
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	web.WriteError(w, http.StatusInternalServerError, err)
}
