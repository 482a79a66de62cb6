package repository

import (
	"context"

	"github.com/godownhub/marketplace/internal/models"
	"gorm.io/gorm"
)

// WarehouseSearch carries the public search filters. Q matches
// case-insensitively as a substring over the text columns; the space bounds
// apply to available_space.
type WarehouseSearch struct {
	Q       string
	MinSqFt *float64
	MaxSqFt *float64
}

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	FindByID(ctx context.Context, id uint) (*models.Warehouse, error)
	FindByIDWithOwner(ctx context.Context, id uint) (*models.Warehouse, error)
	FindBySourceListing(ctx context.Context, listingID uint) (*models.Warehouse, error)
	FindLatest(ctx context.Context, limit int) ([]models.Warehouse, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Warehouse, error)
	FindAllWithOwner(ctx context.Context) ([]models.Warehouse, error)
	Search(ctx context.Context, filter WarehouseSearch) ([]models.Warehouse, error)
	SetApproval(ctx context.Context, id uint, approved bool) error
	SetDisabled(ctx context.Context, id uint, disabled bool) error
	Delete(ctx context.Context, id uint) error
}

type warehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *warehouseRepository) FindByID(ctx context.Context, id uint) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	if err := r.db.WithContext(ctx).First(&warehouse, id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepository) FindByIDWithOwner(ctx context.Context, id uint) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	if err := r.db.WithContext(ctx).Preload("Owner").First(&warehouse, id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// FindBySourceListing is the promotion idempotency lookup.
func (r *warehouseRepository) FindBySourceListing(ctx context.Context, listingID uint) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.db.WithContext(ctx).
		Where("source_listing_id = ?", listingID).
		First(&warehouse).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepository) FindLatest(ctx context.Context, limit int) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&warehouses).Error
	if err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *warehouseRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&warehouses).Error
	if err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *warehouseRepository) FindAllWithOwner(ctx context.Context) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&warehouses).Error
	if err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *warehouseRepository) Search(ctx context.Context, filter WarehouseSearch) ([]models.Warehouse, error) {
	q := r.db.WithContext(ctx).Model(&models.Warehouse{})

	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where(
			r.db.Where("name ILIKE ?", like).
				Or("city ILIKE ?", like).
				Or("state ILIKE ?", like).
				Or("pincode ILIKE ?", like).
				Or("address ILIKE ?", like).
				Or("type ILIKE ?", like),
		)
	}
	if filter.MinSqFt != nil {
		q = q.Where("available_space >= ?", *filter.MinSqFt)
	}
	if filter.MaxSqFt != nil {
		q = q.Where("available_space <= ?", *filter.MaxSqFt)
	}

	var warehouses []models.Warehouse
	if err := q.Order("created_at DESC").Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *warehouseRepository) SetApproval(ctx context.Context, id uint, approved bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Warehouse{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (r *warehouseRepository) SetDisabled(ctx context.Context, id uint, disabled bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Warehouse{}).
		Where("id = ?", id).
		Update("is_disabled_by_admin", disabled).Error
}

func (r *warehouseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Warehouse{}, id).Error
}
