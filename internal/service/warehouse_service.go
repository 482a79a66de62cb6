package service

import (
	"context"
	"errors"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/repository"
	"gorm.io/gorm"
)

const (
	defaultWarehousePageSize = 24
	maxWarehousePageSize     = 100
)

type WarehouseService interface {
	Latest(ctx context.Context, take int) ([]models.Warehouse, error)
	Search(ctx context.Context, filter repository.WarehouseSearch) ([]models.Warehouse, error)
	Get(ctx context.Context, id uint) (*models.Warehouse, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Warehouse, error)
	ListAll(ctx context.Context) ([]models.Warehouse, error)
	SetApproval(ctx context.Context, id uint, approved bool) (*models.Warehouse, error)
	SetDisabled(ctx context.Context, id uint, disabled bool) (*models.Warehouse, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

func (s *warehouseService) Latest(ctx context.Context, take int) ([]models.Warehouse, error) {
	if take <= 0 {
		take = defaultWarehousePageSize
	}
	if take > maxWarehousePageSize {
		take = maxWarehousePageSize
	}
	return s.warehouseRepo.FindLatest(ctx, take)
}

func (s *warehouseService) Search(ctx context.Context, filter repository.WarehouseSearch) ([]models.Warehouse, error) {
	return s.warehouseRepo.Search(ctx, filter)
}

// Get returns the public detail view, owner included.
func (s *warehouseService) Get(ctx context.Context, id uint) (*models.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	return warehouse, nil
}

func (s *warehouseService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Warehouse, error) {
	return s.warehouseRepo.FindByOwner(ctx, ownerID)
}

func (s *warehouseService) ListAll(ctx context.Context) ([]models.Warehouse, error) {
	return s.warehouseRepo.FindAllWithOwner(ctx)
}

func (s *warehouseService) SetApproval(ctx context.Context, id uint, approved bool) (*models.Warehouse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.SetApproval(ctx, id, approved); err != nil {
		return nil, err
	}
	return s.warehouseRepo.FindByID(ctx, id)
}

func (s *warehouseService) SetDisabled(ctx context.Context, id uint, disabled bool) (*models.Warehouse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.SetDisabled(ctx, id, disabled); err != nil {
		return nil, err
	}
	return s.warehouseRepo.FindByID(ctx, id)
}

// Delete removes a warehouse. Admins may delete any; owners only their own.
func (s *warehouseService) Delete(ctx context.Context, actor *models.User, id uint) error {
	warehouse, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.HasRole(models.RoleAdmin) && warehouse.OwnerID != actor.ID {
		return ErrForbidden
	}
	return s.warehouseRepo.Delete(ctx, id)
}
