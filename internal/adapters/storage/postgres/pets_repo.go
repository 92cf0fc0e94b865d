package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

const petSelect = `
	SELECT p.id, p.name, p.birth_date, p.owner_id, t.id, t.name
	FROM pets p
	JOIN pet_types t ON t.id = p.type_id
`

func (r *PetsRepo) FindByID(ctx context.Context, id int) (model.Pet, error) {
	row := r.db.QueryRowContext(ctx, petSelect+` WHERE p.id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Pet{}, pets.ErrNotFound
		}
		return model.Pet{}, err
	}

	visits, err := r.visitsOfPet(ctx, p.ID)
	if err != nil {
		return model.Pet{}, err
	}
	p.Visits = visits

	return p, nil
}

func (r *PetsRepo) FindAll(ctx context.Context) ([]model.Pet, error) {
	rows, err := r.db.QueryContext(ctx, petSelect+` ORDER BY p.id`)
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

func (r *PetsRepo) Save(ctx context.Context, p *model.Pet) error {
	var typeID any
	if p.Type != nil {
		typeID = p.Type.ID
	}

	if p.ID == 0 {
		return r.db.QueryRowContext(ctx, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, p.Name, toNullDate(p.BirthDate), typeID, p.OwnerID).Scan(&p.ID)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, birth_date = $3, type_id = $4, owner_id = $5
		WHERE id = $1
	`, p.ID, p.Name, toNullDate(p.BirthDate), typeID, p.OwnerID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// Delete: primero las visits del pet, después el pet (mismo orden que
// el contrato del API; no se delega en cascadas del schema).
func (r *PetsRepo) Delete(ctx context.Context, id int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE pet_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return pets.ErrNotFound
		}
		return nil
	})
}

func (r *PetsRepo) visitsOfPet(ctx context.Context, petID int) ([]model.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, visit_date, description, pet_id
		FROM visits
		WHERE pet_id = $1
		ORDER BY id
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (model.Pet, error) {
	var (
		p  model.Pet
		t  model.PetType
		bd sql.NullTime
	)
	if err := row.Scan(&p.ID, &p.Name, &bd, &p.OwnerID, &t.ID, &t.Name); err != nil {
		return model.Pet{}, err
	}
	p.Type = &t
	p.BirthDate = fromNullDate(bd)
	return p, nil
}

func toNullDate(d *model.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func fromNullDate(nt sql.NullTime) *model.Date {
	if !nt.Valid {
		return nil
	}
	d := model.Date{Time: nt.Time}
	return &d
}
