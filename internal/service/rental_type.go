package service

import (
	"context"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

type rentalTypeService struct {
	typeRepo repository.RentalTypeRepository
}

func NewRentalTypeService(typeRepo repository.RentalTypeRepository) RentalTypeService {
	return &rentalTypeService{typeRepo: typeRepo}
}

func (s *rentalTypeService) ListActive(ctx context.Context) ([]domain.RentalType, error) {
	return s.typeRepo.ListActive(ctx)
}
