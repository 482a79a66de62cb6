package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/godownhub/marketplace/internal/dto"
	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListingService interface {
	Create(ctx context.Context, ownerID uint, req dto.CreateListingRequest) (*models.Listing, error)
	Update(ctx context.Context, ownerID, id uint, req dto.UpdateListingRequest) (*models.Listing, error)
	Get(ctx context.Context, ownerID, id uint) (*models.Listing, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error)
}

type listingService struct {
	listingRepo repository.ListingRepository
	promoter    Promoter
}

func NewListingService(listingRepo repository.ListingRepository, promoter Promoter) ListingService {
	return &listingService{listingRepo: listingRepo, promoter: promoter}
}

func (s *listingService) Create(ctx context.Context, ownerID uint, req dto.CreateListingRequest) (*models.Listing, error) {
	status := models.ListingStatus(req.Status)
	if !models.ValidListingStatus(status) {
		status = models.ListingDraft
	}

	title := req.Title
	if title == "" {
		title = "Untitled Listing"
	}

	address := datatypes.JSONMap(req.Address)
	if address == nil {
		// The wizard's first step may not have run yet; the schema still
		// requires an address blob.
		address = datatypes.JSONMap{
			"addressLine1": "Draft " + time.Now().Format("2006-01-02 15:04:05"),
			"city":         "",
			"state":        "",
			"zip":          "",
		}
	}

	listing := &models.Listing{
		OwnerID:        ownerID,
		Status:         status,
		Title:          title,
		Address:        address,
		Use:            datatypes.JSONMap(req.Use),
		Amenities:      datatypes.JSONMap(req.Amenities),
		Approvals:      datatypes.JSONMap(req.Approvals),
		Qualifications: datatypes.JSONMap(req.Qualifications),
		Pricing:        datatypes.JSONMap(req.Pricing),
		Hours:          datatypes.JSONMap(req.Hours),
		Services:       datatypes.JSONMap(req.Services),
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return listing, nil
}

// Update applies a partial patch to an owned listing. When the patch moves
// the status into PUBLISHED from any other state, the saved listing is
// promoted to a warehouse. The listing save and the promotion are separate
// boundaries: a failed promotion is logged and the update still succeeds.
func (s *listingService) Update(ctx context.Context, ownerID, id uint, req dto.UpdateListingRequest) (*models.Listing, error) {
	existing, err := s.listingRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	prevStatus := existing.Status

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Status != nil && models.ValidListingStatus(models.ListingStatus(*req.Status)) {
		existing.Status = models.ListingStatus(*req.Status)
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Address != nil {
		existing.Address = datatypes.JSONMap(req.Address)
	}
	if req.Use != nil {
		existing.Use = datatypes.JSONMap(req.Use)
	}
	if req.Amenities != nil {
		existing.Amenities = datatypes.JSONMap(req.Amenities)
	}
	if req.Approvals != nil {
		existing.Approvals = datatypes.JSONMap(req.Approvals)
	}
	if req.Qualifications != nil {
		existing.Qualifications = datatypes.JSONMap(req.Qualifications)
	}
	if req.Pricing != nil {
		existing.Pricing = datatypes.JSONMap(req.Pricing)
	}
	if req.Hours != nil {
		existing.Hours = datatypes.JSONMap(req.Hours)
	}
	if req.Services != nil {
		existing.Services = datatypes.JSONMap(req.Services)
	}

	if err := s.listingRepo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("save listing: %w", err)
	}

	justPublished := existing.Status == models.ListingPublished && prevStatus != models.ListingPublished
	if justPublished {
		if _, err := s.promoter.Promote(ctx, existing); err != nil {
			if errors.Is(err, ErrAlreadyPromoted) {
				log.Printf("[Promotion] listing %d already promoted, skipping", existing.ID)
			} else {
				log.Printf("[Promotion] listing %d promotion failed: %v", existing.ID, err)
			}
		}
	}

	return existing, nil
}

func (s *listingService) Get(ctx context.Context, ownerID, id uint) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error) {
	return s.listingRepo.FindByOwner(ctx, ownerID)
}
