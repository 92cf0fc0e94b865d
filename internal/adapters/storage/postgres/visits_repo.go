package postgres

import (
	"context"
	"database/sql"

	"petclinic/internal/domain/model"
	"petclinic/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

var _ visits.Repository = (*VisitsRepo)(nil)

func (r *VisitsRepo) FindByID(ctx context.Context, id int) (model.Visit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, visit_date, description, pet_id FROM visits WHERE id = $1
	`, id)

	v, err := scanVisit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Visit{}, visits.ErrNotFound
		}
		return model.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) FindAll(ctx context.Context) ([]model.Visit, error) {
	return r.list(ctx, `
		SELECT id, visit_date, description, pet_id FROM visits ORDER BY id
	`)
}

func (r *VisitsRepo) FindByPetID(ctx context.Context, petID int) ([]model.Visit, error) {
	return r.list(ctx, `
		SELECT id, visit_date, description, pet_id FROM visits WHERE pet_id = $1 ORDER BY id
	`, petID)
}

func (r *VisitsRepo) Save(ctx context.Context, v *model.Visit) error {
	if v.ID == 0 {
		return r.db.QueryRowContext(ctx, `
			INSERT INTO visits (visit_date, description, pet_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, toNullDate(v.Date), v.Description, v.PetID).Scan(&v.ID)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET visit_date = $2, description = $3, pet_id = $4
		WHERE id = $1
	`, v.ID, toNullDate(v.Date), v.Description, v.PetID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.ErrNotFound
	}
	return nil
}

func (r *VisitsRepo) list(ctx context.Context, query string, args ...any) ([]model.Visit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

func scanVisit(row rowScanner) (model.Visit, error) {
	var (
		v  model.Visit
		vd sql.NullTime
	)
	if err := row.Scan(&v.ID, &vd, &v.Description, &v.PetID); err != nil {
		return model.Visit{}, err
	}
	v.Date = fromNullDate(vd)
	return v, nil
}
