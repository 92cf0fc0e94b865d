package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

var _ vets.Repository = (*VetsRepo)(nil)

func (r *VetsRepo) FindByID(ctx context.Context, id int) (model.Vet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name FROM vets WHERE id = $1
	`, id)

	var v model.Vet
	if err := row.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
		if err == sql.ErrNoRows {
			return model.Vet{}, vets.ErrNotFound
		}
		return model.Vet{}, err
	}

	sps, err := r.specialtiesOfVet(ctx, v.ID)
	if err != nil {
		return model.Vet{}, err
	}
	v.Specialties = sps

	return v, nil
}

func (r *VetsRepo) FindAll(ctx context.Context) ([]model.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name FROM vets ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Vet, 0)
	for rows.Next() {
		var v model.Vet
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		sps, err := r.specialtiesOfVet(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Specialties = sps
	}

	return out, nil
}

// Save upserta el vet y reemplaza su set de specialties completo.
func (r *VetsRepo) Save(ctx context.Context, v *model.Vet) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if v.ID == 0 {
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO vets (first_name, last_name)
				VALUES ($1, $2)
				RETURNING id
			`, v.FirstName, v.LastName).Scan(&v.ID); err != nil {
				return err
			}
		} else {
			res, err := tx.ExecContext(ctx, `
				UPDATE vets SET first_name = $2, last_name = $3 WHERE id = $1
			`, v.ID, v.FirstName, v.LastName)
			if err != nil {
				return err
			}
			n, _ := res.RowsAffected()
			if n == 0 {
				return vets.ErrNotFound
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM vet_specialties WHERE vet_id = $1`, v.ID); err != nil {
			return err
		}
		for _, sp := range v.Specialties {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO vet_specialties (vet_id, specialty_id) VALUES ($1, $2)
			`, v.ID, sp.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *VetsRepo) Delete(ctx context.Context, id int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vet_specialties WHERE vet_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM vets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return vets.ErrNotFound
		}
		return nil
	})
}

func (r *VetsRepo) specialtiesOfVet(ctx context.Context, vetID int) ([]model.Specialty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.name
		FROM specialties s
		JOIN vet_specialties vs ON vs.specialty_id = s.id
		WHERE vs.vet_id = $1
		ORDER BY s.id
	`, vetID)
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
