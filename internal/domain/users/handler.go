package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petclinic/internal/domain/model"
	"petclinic/internal/middleware"
	"petclinic/internal/validation"
	"petclinic/internal/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Use(middleware.RequireRole(middleware.RoleAdmin))
		ur.Post("/", createUserHandler(svc))
	})
}

func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u model.User
		if err := web.Decode(r, &u); err != nil {
			web.WriteError(w, http.StatusBadRequest, err)
			return
		}

		if errs := validation.Check(u); errs != nil {
			u.Password = ""
			web.WriteValidationErrors(w, u, errs)
			return
		}

		saved, err := svc.Save(r.Context(), u)
		if err != nil {
			if errors.Is(err, ErrNoRoles) {
				web.WriteError(w, http.StatusBadRequest, err)
				return
			}
			web.WriteError(w, http.StatusInternalServerError, err)
			return
		}

		// La password (ya hasheada) nunca vuelve al cliente.
		saved.Password = ""
		web.WriteJSON(w, http.StatusCreated, saved)
	}
}
