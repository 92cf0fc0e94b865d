package specialties

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
	r.Route("/specialties", func(sr chi.Router) {
		sr.Use(middleware.RequireRole(middleware.RoleVetAdmin))

		sr.Get("/", listSpecialtiesHandler(svc))
		sr.Post("/", createSpecialtyHandler(svc))
		sr.Get("/{specialtyID}", getSpecialtyHandler(svc))
		sr.Put("/{specialtyID}", updateSpecialtyHandler(svc))
		sr.Delete("/{specialtyID}", deleteSpecialtyHandler(svc))
	})
}

func listSpecialtiesHandler(svc *Service) http.HandlerFunc {
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

func getSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "specialtyID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		sp, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, sp)
	}
}

func createSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sp model.Specialty
		if err := web.Decode(r, &sp); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(sp); errs != nil {
			web.WriteValidationErrors(w, sp, errs)
			return
		}

		sp.ID = 0
		if err := svc.Save(r.Context(), &sp); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, sp)
	}
}

func updateSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sp model.Specialty
		if err := web.Decode(r, &sp); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(sp); errs != nil {
			web.WriteValidationErrors(w, sp, errs)
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "specialtyID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		current, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		current.Name = sp.Name

		if err := svc.Save(r.Context(), &current); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "specialtyID"))
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
