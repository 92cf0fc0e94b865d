package middleware

import (
	"context"
	"net/http"
	"strings"

	"petclinic/internal/domain/model"
)

type ctxKey string

const principalKey ctxKey = "principal"

// Principal es el usuario autenticado del request, con sus roles
// tal como están en storage (con prefijo ROLE_).
type Principal struct {
	Username string
	Roles    []string
}

// HasRole compara contra el nombre pelado del rol (OWNER_ADMIN, ...).
func (p Principal) HasRole(role string) bool {
	for _, granted := range p.Roles {
		if granted == model.RolePrefix+role || granted == role {
			return true
		}
	}
	return false
}

// Authenticator valida credenciales Basic contra el store de usuarios.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (model.User, error)
}

// BasicAuth autentica cada request con HTTP Basic y deja el Principal
// en el contexto. Sin credenciales o con credenciales inválidas: 401.
// La decisión por rol la toma RequireRole en cada grupo de rutas.
func BasicAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || strings.TrimSpace(username) == "" {
				unauthorized(w)
				return
			}

			u, err := auth.Authenticate(r.Context(), username, password)
			if err != nil {
				unauthorized(w)
				return
			}

			roles := make([]string, 0, len(u.Roles))
			for _, role := range u.Roles {
				roles = append(roles, role.Name)
			}

			p := Principal{Username: u.Username, Roles: roles}
			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="petclinic"`)
	w.WriteHeader(http.StatusUnauthorized)
}
