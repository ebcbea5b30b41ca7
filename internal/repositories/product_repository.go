package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pharma-backend/internal/models"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

// Create inserts a product row. The batch number is the primary key, so a
// duplicate batch fails on the unique constraint.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE batch_number=$1)`,
		p.BatchNumber,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("batch number %s already exists", p.BatchNumber)
	}

	return r.DB.QueryRow(ctx,
		`INSERT INTO products(batch_number, name, quantity, purchase_price, selling_price, expiry_date, agency_id)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING product_id, is_active, created_at, updated_at`,
		p.BatchNumber, p.Name, p.Quantity, p.PurchasePrice, p.SellingPrice, p.ExpiryDate, p.AgencyID,
	).Scan(&p.ProductID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) GetByBatch(ctx context.Context, batch models.BatchNumber) (*models.Product, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT product_id, batch_number, name, quantity, purchase_price, selling_price,
                expiry_date, agency_id, is_active, created_at, updated_at
         FROM products WHERE batch_number=$1`, batch)

	var p models.Product
	err := row.Scan(&p.ProductID, &p.BatchNumber, &p.Name, &p.Quantity, &p.PurchasePrice,
		&p.SellingPrice, &p.ExpiryDate, &p.AgencyID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT product_id, batch_number, name, quantity, purchase_price, selling_price,
                expiry_date, agency_id, is_active, created_at, updated_at
         FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchActive returns active products matching the query by name or batch
// number. Soft-deleted rows never appear here, so retired batches cannot be
// added to a new invoice.
func (r *ProductRepository) SearchActive(ctx context.Context, query string) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT product_id, batch_number, name, quantity, purchase_price, selling_price,
                expiry_date, agency_id, is_active, created_at, updated_at
         FROM products
         WHERE is_active=TRUE AND (name ILIKE '%' || $1 || '%' OR batch_number ILIKE '%' || $1 || '%')
         ORDER BY name`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE products SET name=$1, quantity=$2, purchase_price=$3, selling_price=$4,
                expiry_date=$5, agency_id=$6, updated_at=CURRENT_TIMESTAMP
         WHERE batch_number=$7`,
		p.Name, p.Quantity, p.PurchasePrice, p.SellingPrice, p.ExpiryDate, p.AgencyID, p.BatchNumber)
	return err
}

// Delete soft-deletes: products referenced by past orders must stay
// retrievable (models.Retain policy). The row remains readable by batch.
func (r *ProductRepository) Delete(ctx context.Context, batch models.BatchNumber) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE products SET is_active=FALSE, updated_at=CURRENT_TIMESTAMP WHERE batch_number=$1`, batch)
	return err
}

func scanProducts(rows pgx.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ProductID, &p.BatchNumber, &p.Name, &p.Quantity, &p.PurchasePrice,
			&p.SellingPrice, &p.ExpiryDate, &p.AgencyID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
