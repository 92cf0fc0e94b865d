package owners

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
	r.Route("/owners", func(or chi.Router) {
		or.Use(middleware.RequireRole(middleware.RoleOwnerAdmin))

		or.Get("/", listOwnersHandler(svc))
		or.Get("/lastname/{lastName}", listOwnersByLastNameHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
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

func listOwnersByLastNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastName := chi.URLParam(r, "lastName")

		items, err := svc.FindByLastName(r.Context(), lastName)
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

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "ownerID")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		o, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, o)
	}
}

func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var o model.Owner
		if err := web.Decode(r, &o); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(o); errs != nil {
			web.WriteValidationErrors(w, o, errs)
			return
		}

		o.ID = 0
		if err := svc.Save(r.Context(), &o); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, o)
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var o model.Owner
		if err := web.Decode(r, &o); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(o); errs != nil {
			web.WriteValidationErrors(w, o, errs)
			return
		}

		id, err := pathID(r, "ownerID")
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		current, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		// Solo el copy-set mutable; id y pets se preservan del row cargado.
		current.FirstName = o.FirstName
		current.LastName = o.LastName
		current.Address = o.Address
		current.City = o.City
		current.Telephone = o.Telephone

		if err := svc.Save(r.Context(), &current); err != nil {
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "ownerID")
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

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	web.WriteError(w, http.StatusInternalServerError, err)
}
