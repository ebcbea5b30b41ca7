package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"pharma-backend/internal/models"
)

type AgencyRepository struct {
	DB *pgxpool.Pool
}

func NewAgencyRepository(db *pgxpool.Pool) *AgencyRepository {
	return &AgencyRepository{DB: db}
}

func (r *AgencyRepository) Create(ctx context.Context, a *models.Agency) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO agencies(name, phone, address)
         VALUES($1, $2, $3)
         RETURNING id, is_active, created_at, updated_at`,
		a.Name, a.Phone, a.Address,
	).Scan(&a.ID, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AgencyRepository) Get(ctx context.Context, id int) (*models.Agency, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, address, is_active, created_at, updated_at
         FROM agencies WHERE id=$1`, id)

	var agency models.Agency
	err := row.Scan(&agency.ID, &agency.Name, &agency.Phone, &agency.Address,
		&agency.IsActive, &agency.CreatedAt, &agency.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *AgencyRepository) List(ctx context.Context) ([]*models.Agency, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, address, is_active, created_at, updated_at
         FROM agencies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []*models.Agency
	for rows.Next() {
		var agency models.Agency
		err := rows.Scan(&agency.ID, &agency.Name, &agency.Phone, &agency.Address,
			&agency.IsActive, &agency.CreatedAt, &agency.UpdatedAt)
		if err != nil {
			return nil, err
		}
		agencies = append(agencies, &agency)
	}
	return agencies, rows.Err()
}

func (r *AgencyRepository) Update(ctx context.Context, a *models.Agency) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE agencies SET name=$1, phone=$2, address=$3, is_active=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		a.Name, a.Phone, a.Address, a.IsActive, a.ID)
	return err
}

// Delete purges the row (models.Purge policy)
func (r *AgencyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM agencies WHERE id=$1`, id)
	return err
}
