package vets

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
	r.Route("/vets", func(vr chi.Router) {
		vr.Use(middleware.RequireRole(middleware.RoleVetAdmin))

		vr.Get("/", listVetsHandler(svc))
		vr.Post("/", createVetHandler(svc))
		vr.Get("/{vetID}", getVetHandler(svc))
		vr.Put("/{vetID}", updateVetHandler(svc))
		vr.Delete("/{vetID}", deleteVetHandler(svc))
	})
}

func listVetsHandler(svc *Service) http.HandlerFunc {
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

func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "vetID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		v, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, v)
	}
}

func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v model.Vet
		if err := web.Decode(r, &v); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(v); errs != nil {
			web.WriteValidationErrors(w, v, errs)
			return
		}

		v.ID = 0
		if err := svc.Save(r.Context(), &v); err != nil {
			writeSaveError(w, v, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, v)
	}
}

func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v model.Vet
		if err := web.Decode(r, &v); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(v); errs != nil {
			web.WriteValidationErrors(w, v, errs)
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "vetID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		current, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		// El set de specialties se reemplaza completo por el recibido.
		current.FirstName = v.FirstName
		current.LastName = v.LastName
		current.Specialties = v.Specialties

		if err := svc.Save(r.Context(), &current); err != nil {
			writeSaveError(w, current, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "vetID"))
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

func writeSaveError(w http.ResponseWriter, v model.Vet, err error) {
	if errors.Is(err, ErrUnknownSpecialty) {
		web.WriteValidationErrors(w, v, map[string]string{
			"specialties": "references an unknown specialty",
		})
		return
	}
	web.WriteError(w, http.StatusInternalServerError, err)
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	web.WriteError(w, http.StatusInternalServerError, err)
}
