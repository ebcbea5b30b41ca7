package services

import (
	"context"

	"pharma-backend/internal/models"
	"pharma-backend/internal/repositories"
)

type AgencyService struct {
	Repo *repositories.AgencyRepository
}

func NewAgencyService(repo *repositories.AgencyRepository) *AgencyService {
	return &AgencyService{Repo: repo}
}

func (s *AgencyService) CreateAgency(ctx context.Context, req *models.CreateAgencyRequest) (*models.Agency, error) {
	if req.Name == "" {
		return nil, invalid("agency name is required")
	}

	agency := &models.Agency{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.Repo.Create(ctx, agency); err != nil {
		return nil, err
	}

	return agency, nil
}

func (s *AgencyService) GetAgency(ctx context.Context, id int) (*models.Agency, error) {
	return s.Repo.Get(ctx, id)
}

func (s *AgencyService) ListAgencies(ctx context.Context) ([]*models.Agency, error) {
	return s.Repo.List(ctx)
}

func (s *AgencyService) UpdateAgency(ctx context.Context, id int, req *models.UpdateAgencyRequest) (*models.Agency, error) {
	if req.Name == "" {
		return nil, invalid("agency name is required")
	}

	agency := &models.Agency{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	}

	if err := s.Repo.Update(ctx, agency); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

func (s *AgencyService) DeleteAgency(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
