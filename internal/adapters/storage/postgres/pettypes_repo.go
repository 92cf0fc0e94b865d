package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/pettypes"
)

type PetTypesRepo struct {
	db *sql.DB
}

func NewPetTypesRepo(db *sql.DB) *PetTypesRepo {
	return &PetTypesRepo{db: db}
}

var _ pettypes.Repository = (*PetTypesRepo)(nil)

func (r *PetTypesRepo) FindByID(ctx context.Context, id int) (model.PetType, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM pet_types WHERE id = $1`, id)

	var t model.PetType
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		if err == sql.ErrNoRows {
			return model.PetType{}, pettypes.ErrNotFound
		}
		return model.PetType{}, err
	}
	return t, nil
}

func (r *PetTypesRepo) FindAll(ctx context.Context) ([]model.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM pet_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PetType, 0)
	for rows.Next() {
		var t model.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PetTypesRepo) Save(ctx context.Context, t *model.PetType) error {
	if t.ID == 0 {
		return r.db.QueryRowContext(ctx, `
			INSERT INTO pet_types (name) VALUES ($1) RETURNING id
		`, t.Name).Scan(&t.ID)
	}

	res, err := r.db.ExecContext(ctx, `UPDATE pet_types SET name = $2 WHERE id = $1`, t.ID, t.Name)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pettypes.ErrNotFound
	}
	return nil
}

func (r *PetTypesRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pet_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pettypes.ErrNotFound
	}
	return nil
}
