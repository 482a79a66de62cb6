package service

import (
	"context"
	"errors"
	"testing"

	"github.com/godownhub/marketplace/internal/dto"
	"github.com/godownhub/marketplace/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestCreateListing_DefaultsForBareDraft(t *testing.T) {
	var created *models.Listing
	listingRepo := &mockListingRepo{
		createFn: func(ctx context.Context, l *models.Listing) error {
			l.ID = 1
			created = l
			return nil
		},
	}

	svc := NewListingService(listingRepo, &mockPromoter{})
	listing, err := svc.Create(context.Background(), 3, dto.CreateListingRequest{})

	assert.NoError(t, err)
	assert.Equal(t, models.ListingDraft, listing.Status)
	assert.Equal(t, "Untitled Listing", listing.Title)
	assert.NotNil(t, created.Address)
	assert.Contains(t, created.Address["addressLine1"], "Draft ")
}

func TestCreateListing_InvalidStatusFallsBackToDraft(t *testing.T) {
	listingRepo := &mockListingRepo{
		createFn: func(ctx context.Context, l *models.Listing) error { return nil },
	}

	svc := NewListingService(listingRepo, &mockPromoter{})
	listing, err := svc.Create(context.Background(), 3, dto.CreateListingRequest{Status: "LIVE"})

	assert.NoError(t, err)
	assert.Equal(t, models.ListingDraft, listing.Status)
}

func TestUpdateListing_PartialPatchLeavesOtherFields(t *testing.T) {
	existing := publishedListing(7)
	existing.Status = models.ListingDraft

	var saved *models.Listing
	listingRepo := &mockListingRepo{
		findByIDOwnerFn: func(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
			return existing, nil
		},
		saveFn: func(ctx context.Context, l *models.Listing) error {
			saved = l
			return nil
		},
	}

	svc := NewListingService(listingRepo, &mockPromoter{})
	listing, err := svc.Update(context.Background(), 3, 7, dto.UpdateListingRequest{
		Title: strPtr("Okhla Cold Chain"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Okhla Cold Chain", listing.Title)
	assert.Equal(t, "Ambient storage with easy truck access.", listing.Description)
	assert.Equal(t, models.ListingDraft, listing.Status)
	assert.NotNil(t, saved)
}

func TestUpdateListing_PublishTriggersPromotion(t *testing.T) {
	existing := publishedListing(7)
	existing.Status = models.ListingDraft

	listingRepo := &mockListingRepo{
		findByIDOwnerFn: func(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
			return existing, nil
		},
		saveFn: func(ctx context.Context, l *models.Listing) error { return nil },
	}

	var promoted *models.Listing
	promoter := &mockPromoter{
		promoteFn: func(ctx context.Context, l *models.Listing) (*models.Warehouse, error) {
			promoted = l
			return &models.Warehouse{ID: 11}, nil
		},
	}

	svc := NewListingService(listingRepo, promoter)
	listing, err := svc.Update(context.Background(), 3, 7, dto.UpdateListingRequest{
		Status: strPtr(string(models.ListingPublished)),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ListingPublished, listing.Status)
	assert.NotNil(t, promoted)
	assert.Equal(t, uint(7), promoted.ID)
}

func TestUpdateListing_SteadyStatePublishedDoesNotRePromote(t *testing.T) {
	existing := publishedListing(7)

	listingRepo := &mockListingRepo{
		findByIDOwnerFn: func(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
			return existing, nil
		},
		saveFn: func(ctx context.Context, l *models.Listing) error { return nil },
	}

	promoteCalled := false
	promoter := &mockPromoter{
		promoteFn: func(ctx context.Context, l *models.Listing) (*models.Warehouse, error) {
			promoteCalled = true
			return nil, nil
		},
	}

	svc := NewListingService(listingRepo, promoter)
	_, err := svc.Update(context.Background(), 3, 7, dto.UpdateListingRequest{
		Status: strPtr(string(models.ListingPublished)),
		Title:  strPtr("Renamed"),
	})

	assert.NoError(t, err)
	assert.False(t, promoteCalled)
}

func TestUpdateListing_PromotionFailureDoesNotFailSave(t *testing.T) {
	existing := publishedListing(7)
	existing.Status = models.ListingDraft

	listingRepo := &mockListingRepo{
		findByIDOwnerFn: func(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
			return existing, nil
		},
		saveFn: func(ctx context.Context, l *models.Listing) error { return nil },
	}
	promoter := &mockPromoter{
		promoteFn: func(ctx context.Context, l *models.Listing) (*models.Warehouse, error) {
			return nil, errors.New("db unavailable")
		},
	}

	svc := NewListingService(listingRepo, promoter)
	listing, err := svc.Update(context.Background(), 3, 7, dto.UpdateListingRequest{
		Status: strPtr(string(models.ListingPublished)),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ListingPublished, listing.Status)
}

func TestUpdateListing_NotFoundForOtherOwner(t *testing.T) {
	listingRepo := &mockListingRepo{
		findByIDOwnerFn: func(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewListingService(listingRepo, &mockPromoter{})
	_, err := svc.Update(context.Background(), 99, 7, dto.UpdateListingRequest{})

	assert.ErrorIs(t, err, ErrListingNotFound)
}
