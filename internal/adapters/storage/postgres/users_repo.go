package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

var _ users.Repository = (*UsersRepo)(nil)

func (r *UsersRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT username, password, enabled FROM users WHERE username = $1
	`, username)

	var u model.User
	if err := row.Scan(&u.Username, &u.Password, &u.Enabled); err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, users.ErrNotFound
		}
		return model.User{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name FROM roles WHERE username = $1 ORDER BY name
	`, u.Username)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.Name); err != nil {
			return model.User{}, err
		}
		u.Roles = append(u.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return model.User{}, err
	}

	return u, nil
}

// Save upserta por username y reemplaza el set de roles completo.
func (r *UsersRepo) Save(ctx context.Context, u model.User) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (username, password, enabled)
			VALUES ($1, $2, $3)
			ON CONFLICT (username)
			DO UPDATE SET password = EXCLUDED.password, enabled = EXCLUDED.enabled
		`, u.Username, u.Password, u.Enabled); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM roles WHERE username = $1`, u.Username); err != nil {
			return err
		}
		for _, role := range u.Roles {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO roles (username, name) VALUES ($1, $2)
			`, u.Username, role.Name); err != nil {
				return err
			}
		}
		return nil
	})
}
