package middleware

import "net/http"

// Roles del sistema (nombres pelados; en storage llevan prefijo ROLE_).
const (
	RoleOwnerAdmin = "OWNER_ADMIN"
	RoleVetAdmin   = "VET_ADMIN"
	RoleAdmin      = "ADMIN"
)

// RequireRole corta el request antes del handler si el principal no
// tiene ninguno de los roles permitidos. Sin principal: 401.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := GetPrincipal(r.Context())
			if !ok {
				unauthorized(w)
				return
			}

			for _, role := range roles {
				if p.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.WriteHeader(http.StatusForbidden)
		})
	}
}
