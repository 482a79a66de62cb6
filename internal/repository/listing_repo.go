package repository

import (
	"context"

	"github.com/godownhub/marketplace/internal/models"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Listing, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error)
	FindPublished(ctx context.Context) ([]models.Listing, error)
	Save(ctx context.Context, listing *models.Listing) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// FindPublished returns all published listings oldest-first, the order the
// backfill walks them in.
func (r *listingRepository) FindPublished(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ListingPublished).
		Order("updated_at ASC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Save(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}
