package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OriginMarker is the human-readable provenance tag appended to a promoted
// warehouse's description. The machine-checked back-reference is
// Warehouse.SourceListingID; the marker stays for display and for operators
// grepping the data.
func OriginMarker(listingID uint) string {
	return fmt.Sprintf("[origin:listing:%d]", listingID)
}

type BackfillResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Promoter converts a published Listing into a Warehouse exactly once.
type Promoter interface {
	Promote(ctx context.Context, listing *models.Listing) (*models.Warehouse, error)
	Backfill(ctx context.Context, dryRun bool) (*BackfillResult, error)
}

type promoter struct {
	listingRepo   repository.ListingRepository
	warehouseRepo repository.WarehouseRepository
}

func NewPromoter(listingRepo repository.ListingRepository, warehouseRepo repository.WarehouseRepository) Promoter {
	return &promoter{listingRepo: listingRepo, warehouseRepo: warehouseRepo}
}

// Promote creates the warehouse derived from the listing, or returns
// ErrAlreadyPromoted when one already exists. The unique index on
// source_listing_id makes the check-then-create safe under concurrent
// publishes: the loser of the race gets a duplicate-key error and reports
// ErrAlreadyPromoted instead of creating a second row.
func (p *promoter) Promote(ctx context.Context, listing *models.Listing) (*models.Warehouse, error) {
	if _, err := p.warehouseRepo.FindBySourceListing(ctx, listing.ID); err == nil {
		return nil, ErrAlreadyPromoted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	warehouse := WarehouseFromListing(listing)
	if err := p.warehouseRepo.Create(ctx, warehouse); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyPromoted
		}
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	return warehouse, nil
}

// Backfill applies the promotion mapping to every published listing that has
// no warehouse yet. With dryRun set it only counts what it would create.
func (p *promoter) Backfill(ctx context.Context, dryRun bool) (*BackfillResult, error) {
	listings, err := p.listingRepo.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("load published listings: %w", err)
	}

	result := &BackfillResult{}
	for i := range listings {
		listing := &listings[i]

		if _, err := p.warehouseRepo.FindBySourceListing(ctx, listing.ID); err == nil {
			result.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if dryRun {
			result.Created++
			continue
		}

		if err := p.warehouseRepo.Create(ctx, WarehouseFromListing(listing)); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("backfill listing %d: %w", listing.ID, err)
		}
		result.Created++
	}
	return result, nil
}

// WarehouseFromListing flattens the wizard JSON into warehouse columns.
// Missing or malformed fields degrade to nil rather than failing the
// promotion; an admin must approve the result before it becomes bookable.
func WarehouseFromListing(l *models.Listing) *models.Warehouse {
	name := strings.TrimSpace(l.Title)
	if name == "" {
		name = fmt.Sprintf("Listing %d", l.ID)
	}

	marker := OriginMarker(l.ID)
	description := marker
	if base := strings.TrimSpace(l.Description); base != "" {
		description = base + "\n\n" + marker
	}

	listingID := l.ID
	total := jsonNumber(l.Pricing, "totalSqFt")

	return &models.Warehouse{
		OwnerID:         l.OwnerID,
		SourceListingID: &listingID,
		Name:            name,
		Address:         jsonString(l.Address, "addressLine1"),
		City:            jsonString(l.Address, "city"),
		State:           jsonString(l.Address, "state"),
		Pincode:         jsonString(l.Address, "zip"),
		Description:     &description,
		TotalSpace:      total,
		AvailableSpace:  cloneFloat(total),
		PricePerSqFt:    jsonNumber(l.Pricing, "ratePerSqFtPerMonth"),
		IsApproved:      false,
		Status:          models.WarehousePublished,
	}
}

func jsonString(m datatypes.JSONMap, key string) *string {
	if m == nil {
		return nil
	}
	s, ok := m[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func jsonNumber(m datatypes.JSONMap, key string) *float64 {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
