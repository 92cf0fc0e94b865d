package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

var _ owners.Repository = (*OwnersRepo)(nil)

func (r *OwnersRepo) FindByID(ctx context.Context, id int) (model.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id)

	var o model.Owner
	if err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		if err == sql.ErrNoRows {
			return model.Owner{}, owners.ErrNotFound
		}
		return model.Owner{}, err
	}

	pets, err := r.petsOfOwner(ctx, o.ID)
	if err != nil {
		return model.Owner{}, err
	}
	o.Pets = pets

	return o, nil
}

func (r *OwnersRepo) FindAll(ctx context.Context) ([]model.Owner, error) {
	return r.list(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		ORDER BY id
	`)
}

func (r *OwnersRepo) FindByLastName(ctx context.Context, lastName string) ([]model.Owner, error) {
	return r.list(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE last_name = $1
		ORDER BY id
	`, lastName)
}

func (r *OwnersRepo) Save(ctx context.Context, o *model.Owner) error {
	if o.ID == 0 {
		return r.db.QueryRowContext(ctx, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&o.ID)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET first_name = $2, last_name = $3, address = $4, city = $5, telephone = $6
		WHERE id = $1
	`, o.ID, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

// Delete borra el árbol completo del owner: visits de sus pets, pets y
// el owner, en esa orden, dentro de una transacción.
func (r *OwnersRepo) Delete(ctx context.Context, id int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM visits WHERE pet_id IN (SELECT id FROM pets WHERE owner_id = $1)
		`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE owner_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return owners.ErrNotFound
		}
		return nil
	})
}

func (r *OwnersRepo) list(ctx context.Context, query string, args ...any) ([]model.Owner, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Owner, 0)
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		pets, err := r.petsOfOwner(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Pets = pets
	}

	return out, nil
}

func (r *OwnersRepo) petsOfOwner(ctx context.Context, ownerID int) ([]model.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.birth_date, p.owner_id, t.id, t.name
		FROM pets p
		JOIN pet_types t ON t.id = p.type_id
		WHERE p.owner_id = $1
		ORDER BY p.id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
