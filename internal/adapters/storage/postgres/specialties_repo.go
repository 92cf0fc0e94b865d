package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/specialties"
)

type SpecialtiesRepo struct {
	db *sql.DB
}

func NewSpecialtiesRepo(db *sql.DB) *SpecialtiesRepo {
	return &SpecialtiesRepo{db: db}
}

var _ specialties.Repository = (*SpecialtiesRepo)(nil)

func (r *SpecialtiesRepo) FindByID(ctx context.Context, id int) (model.Specialty, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id)

	var sp model.Specialty
	if err := row.Scan(&sp.ID, &sp.Name); err != nil {
		if err == sql.ErrNoRows {
			return model.Specialty{}, specialties.ErrNotFound
		}
		return model.Specialty{}, err
	}
	return sp, nil
}

func (r *SpecialtiesRepo) FindAll(ctx context.Context) ([]model.Specialty, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM specialties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Specialty, 0)
	for rows.Next() {
		var sp model.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *SpecialtiesRepo) Save(ctx context.Context, sp *model.Specialty) error {
	if sp.ID == 0 {
		return r.db.QueryRowContext(ctx, `
			INSERT INTO specialties (name) VALUES ($1) RETURNING id
		`, sp.Name).Scan(&sp.ID)
	}

	res, err := r.db.ExecContext(ctx, `UPDATE specialties SET name = $2 WHERE id = $1`, sp.ID, sp.Name)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return specialties.ErrNotFound
	}
	return nil
}

// Delete: primero el join con vets, después la specialty.
func (r *SpecialtiesRepo) Delete(ctx context.Context, id int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vet_specialties WHERE specialty_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM specialties WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return specialties.ErrNotFound
		}
		return nil
	})
}
