package services

import (
	"context"

	"pharma-backend/internal/cache"
	"pharma-backend/internal/models"
	"pharma-backend/internal/repositories"
)

type ProductService struct {
	Repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := req.BatchNumber.Validate(); err != nil {
		return nil, invalid(err.Error())
	}
	if req.Name == "" {
		return nil, invalid("product name is required")
	}

	product := &models.Product{
		BatchNumber:   req.BatchNumber,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		ExpiryDate:    req.ExpiryDate,
		AgencyID:      req.AgencyID,
	}

	if err := s.Repo.Create(ctx, product); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, batch models.BatchNumber) (*models.Product, error) {
	return s.Repo.GetByBatch(ctx, batch)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.Repo.List(ctx)
}

// SearchProducts returns active products only, for invoice building
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]*models.Product, error) {
	return s.Repo.SearchActive(ctx, query)
}

func (s *ProductService) UpdateProduct(ctx context.Context, batch models.BatchNumber, req *models.UpdateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, invalid("product name is required")
	}

	product := &models.Product{
		BatchNumber:   batch,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		ExpiryDate:    req.ExpiryDate,
		AgencyID:      req.AgencyID,
	}

	if err := s.Repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.Repo.GetByBatch(ctx, batch)
}

// DeleteProduct retires the batch. The row stays retrievable by batch number
// but disappears from active counts and invoice search.
func (s *ProductService) DeleteProduct(ctx context.Context, batch models.BatchNumber) error {
	if err := s.Repo.Delete(ctx, batch); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}
