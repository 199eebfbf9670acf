package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/internal/domain"
	"github.com/Murugadoss7/dental-app/internal/repository"
)

type CatalogServiceImpl struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) Create(ctx context.Context, dto domain.CreateCatalogItemDTO) (*domain.DentalCatalogItem, error) {
	item := domain.DentalCatalogItem{
		Type:     dto.Type,
		Name:     dto.Name,
		Category: dto.Category,
	}
	if dto.IsCommon != nil {
		item.IsCommon = *dto.IsCommon
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error("failed to create catalog item", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.DentalCatalogItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateCatalogItemDTO) (*domain.DentalCatalogItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Type != nil {
		item.Type = *dto.Type
	}
	if dto.Name != nil {
		item.Name = *dto.Name
	}
	if dto.Category != nil {
		item.Category = *dto.Category
	}
	if dto.IsCommon != nil {
		item.IsCommon = *dto.IsCommon
	}

	if err := s.repo.Update(ctx, *item); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("failed to update catalog item", zap.String("id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *CatalogServiceImpl) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.DentalCatalogItem, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}
