package pettypes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"petclinic/internal/domain/model"
	"petclinic/internal/middleware"
	"petclinic/internal/validation"
	"petclinic/internal/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Lecturas abiertas a ambos admins; escrituras solo VET_ADMIN.
	read := middleware.RequireRole(middleware.RoleOwnerAdmin, middleware.RoleVetAdmin)
	write := middleware.RequireRole(middleware.RoleVetAdmin)

	r.Route("/pettypes", func(tr chi.Router) {
		tr.With(read).Get("/", listPetTypesHandler(svc))
		tr.With(read).Get("/{petTypeID}", getPetTypeHandler(svc))
		tr.With(write).Post("/", createPetTypeHandler(svc))
		tr.With(write).Put("/{petTypeID}", updatePetTypeHandler(svc))
		tr.With(write).Delete("/{petTypeID}", deletePetTypeHandler(svc))
	})
}

func listPetTypesHandler(svc *Service) http.HandlerFunc {
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

func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petTypeID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		t, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, t)
	}
}

func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t model.PetType
		if err := web.Decode(r, &t); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(t); errs != nil {
			web.WriteValidationErrors(w, t, errs)
			return
		}

		t.ID = 0
		if err := svc.Save(r.Context(), &t); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, t)
	}
}

func updatePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t model.PetType
		if err := web.Decode(r, &t); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(t); errs != nil {
			web.WriteValidationErrors(w, t, errs)
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "petTypeID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		current, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		current.Name = t.Name

		if err := svc.Save(r.Context(), &current); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "petTypeID"))
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

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	web.WriteError(w, http.StatusInternalServerError, err)
}
