package users

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"petclinic/internal/domain/model"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save aplica la única regla de negocio real del sistema:
// - el usuario debe traer al menos un rol,
// - cada rol queda con el prefijo ROLE_ (idempotente: si ya lo trae,
//   no se toca).
// La password se guarda hasheada con bcrypt.
func (s *Service) Save(ctx context.Context, u model.User) (model.User, error) {
	if len(u.Roles) == 0 {
		return model.User{}, ErrNoRoles
	}

	for i, r := range u.Roles {
		name := strings.TrimSpace(r.Name)
		if !strings.HasPrefix(name, model.RolePrefix) {
			name = model.RolePrefix + name
		}
		u.Roles[i].Name = name
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	u.Password = string(hash)

	if err := s.repo.Save(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *Service) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// Authenticate resuelve el Basic auth: usuario habilitado y password
// que matchee el hash. Cualquier falla responde el mismo error para no
// filtrar si el usuario existe.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return model.User{}, ErrBadCredentials
	}
	if !u.Enabled {
		return model.User{}, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return model.User{}, ErrBadCredentials
	}
	return u, nil
}

// EnsureAdmin garantiza un usuario de arranque con los tres roles.
// Si el username ya existe no se toca (las credenciales vigentes mandan).
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil
	}

	_, err := s.Save(ctx, model.User{
		Username: username,
		Password: password,
		Enabled:  true,
		Roles: []model.Role{
			{Name: "OWNER_ADMIN"},
			{Name: "VET_ADMIN"},
			{Name: "ADMIN"},
		},
	})
	return err
}
