package users

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"petclinic/internal/domain/model"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byUsername map[string]model.User
}

func newTestRepo() *testRepo {
	return &testRepo{byUsername: map[string]model.User{}}
}

func (r *testRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) Save(ctx context.Context, u model.User) error {
	r.byUsername[u.Username] = u
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Save_RequiresAtLeastOneRole(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Save(context.Background(), model.User{
		Username: "joe",
		Password: "pw",
	})
	if !errors.Is(err, ErrNoRoles) {
		t.Fatalf("expected ErrNoRoles, got %v", err)
	}
}

func TestService_Save_NormalizesRolePrefix(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	saved, err := svc.Save(context.Background(), model.User{
		Username: "joe",
		Password: "pw",
		Enabled:  true,
		Roles: []model.Role{
			{Name: "OWNER_ADMIN"},    // sin prefijo
			{Name: "ROLE_VET_ADMIN"}, // ya prefijado: no se duplica
			{Name: "  ADMIN  "},      // con espacios
		},
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	want := []string{"ROLE_OWNER_ADMIN", "ROLE_VET_ADMIN", "ROLE_ADMIN"}
	for i, w := range want {
		if saved.Roles[i].Name != w {
			t.Fatalf("role %d: expected %s, got %s", i, w, saved.Roles[i].Name)
		}
	}
}

func TestService_Save_HashesPassword(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	saved, err := svc.Save(context.Background(), model.User{
		Username: "joe",
		Password: "secret",
		Roles:    []model.Role{{Name: "ADMIN"}},
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.Password == "secret" {
		t.Fatal("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret")) != nil {
		t.Fatal("stored hash does not match original password")
	}
}

func TestService_Authenticate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Save(context.Background(), model.User{
		Username: "joe",
		Password: "secret",
		Enabled:  true,
		Roles:    []model.Role{{Name: "OWNER_ADMIN"}},
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "joe", "secret"); err != nil {
		t.Fatalf("expected auth ok, got %v", err)
	}

	// password incorrecta, usuario inexistente y deshabilitado responden
	// el mismo error para no filtrar información.
	if _, err := svc.Authenticate(context.Background(), "joe", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody", "secret"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown user, got %v", err)
	}

	off := repo.byUsername["joe"]
	off.Enabled = false
	repo.byUsername["joe"] = off
	if _, err := svc.Authenticate(context.Background(), "joe", "secret"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for disabled user, got %v", err)
	}
}

func TestService_EnsureAdmin(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	// Sin credenciales configuradas: no-op.
	if err := svc.EnsureAdmin(context.Background(), "", ""); err != nil {
		t.Fatalf("EnsureAdmin empty error: %v", err)
	}
	if len(repo.byUsername) != 0 {
		t.Fatal("expected no users created")
	}

	if err := svc.EnsureAdmin(context.Background(), "admin", "pw"); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	u := repo.byUsername["admin"]
	if !u.Enabled || len(u.Roles) != 3 {
		t.Fatalf("expected enabled admin with 3 roles, got %#v", u)
	}

	// Segunda llamada no pisa al usuario existente.
	before := repo.byUsername["admin"].Password
	if err := svc.EnsureAdmin(context.Background(), "admin", "other"); err != nil {
		t.Fatalf("EnsureAdmin #2 error: %v", err)
	}
	if repo.byUsername["admin"].Password != before {
		t.Fatal("expected existing admin untouched")
	}
}
