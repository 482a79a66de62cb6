package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/notifier"
	"github.com/godownhub/marketplace/internal/repository"
	"gorm.io/gorm"
)

type BookingService interface {
	Create(ctx context.Context, actor *models.User, warehouseID uint) (*models.Booking, error)
	Transition(ctx context.Context, actor *models.User, bookingID uint, target models.BookingStatus) (*models.Booking, error)
	AttachNote(ctx context.Context, actor *models.User, bookingID uint, note string) error
	GetDetail(ctx context.Context, actor *models.User, id uint) (*models.Booking, []models.BookingEvent, error)
	ListByMerchant(ctx context.Context, actor *models.User, merchantID uint) ([]models.Booking, error)
	ListByOwner(ctx context.Context, actor *models.User, ownerID uint) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo   repository.BookingRepository
	eventRepo     repository.BookingEventRepository
	warehouseRepo repository.WarehouseRepository
	sender        notifier.Sender
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	eventRepo repository.BookingEventRepository,
	warehouseRepo repository.WarehouseRepository,
	sender notifier.Sender,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		eventRepo:     eventRepo,
		warehouseRepo: warehouseRepo,
		sender:        sender,
	}
}

// Create places a PENDING booking. The booking row and its first history
// event are written in one transaction.
func (s *bookingService) Create(ctx context.Context, actor *models.User, warehouseID uint) (*models.Booking, error) {
	if !actor.HasRole(models.RoleMerchant) {
		return nil, ErrForbidden
	}

	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	if !warehouse.Bookable() {
		return nil, ErrNotBookable
	}

	var result *models.Booking
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking := &models.Booking{
			WarehouseID: warehouseID,
			MerchantID:  actor.ID,
			Status:      models.StatusPending,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}
		if err := s.eventRepo.Append(ctx, tx, &models.BookingEvent{
			BookingID: booking.ID,
			Status:    models.StatusPending,
		}); err != nil {
			return err
		}
		result = booking
		return nil
	})

	return result, err
}

// Transition moves a booking along the lifecycle table. The row lock
// serializes concurrent attempts so both the validation and the write see
// the same status; the status update and the history event commit together.
func (s *bookingService) Transition(ctx context.Context, actor *models.User, bookingID uint, target models.BookingStatus) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		warehouse, err := s.warehouseRepo.FindByID(ctx, booking.WarehouseID)
		if err != nil {
			return fmt.Errorf("load warehouse: %w", err)
		}

		isOwner := actor.HasRole(models.RoleOwner) && actor.ID == warehouse.OwnerID
		if !actor.HasRole(models.RoleAdmin) && !isOwner {
			return ErrForbidden
		}

		if !models.CanTransition(booking.Status, target) {
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, bookingID, target); err != nil {
			return err
		}
		if err := s.eventRepo.Append(ctx, tx, &models.BookingEvent{
			BookingID: bookingID,
			Status:    target,
		}); err != nil {
			return err
		}

		booking.Status = target
		result = booking
		return nil
	})

	return result, err
}

// AttachNote appends a history event carrying the booking's current status
// plus the owner's note, then queues a notification to the merchant. It is
// an annotation, never a transition.
func (s *bookingService) AttachNote(ctx context.Context, actor *models.User, bookingID uint, note string) error {
	booking, err := s.bookingRepo.FindByIDWithRelations(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if !actor.HasRole(models.RoleOwner) || booking.Warehouse == nil || booking.Warehouse.OwnerID != actor.ID {
		return ErrForbidden
	}

	annotated := "OWNER_MSG: " + note
	if err := s.eventRepo.Append(ctx, s.bookingRepo.GetDB(), &models.BookingEvent{
		BookingID: bookingID,
		Status:    booking.Status,
		Note:      &annotated,
	}); err != nil {
		return fmt.Errorf("append note event: %w", err)
	}

	if booking.Merchant != nil {
		msg := notifier.Message{
			To:      booking.Merchant.Email,
			Subject: fmt.Sprintf("Message about booking #%d", booking.ID),
			Body:    note,
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			// Delivery is best-effort; the annotation already committed.
			log.Printf("[Booking] notification for booking %d failed: %v", booking.ID, err)
		}
	}

	return nil
}

// GetDetail returns a booking with its full event history. Visible only to
// an admin, the owning merchant, or the warehouse's owner.
func (s *bookingService) GetDetail(ctx context.Context, actor *models.User, id uint) (*models.Booking, []models.BookingEvent, error) {
	booking, err := s.bookingRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}

	isMerchant := actor.HasRole(models.RoleMerchant) && actor.ID == booking.MerchantID
	isOwner := actor.HasRole(models.RoleOwner) && booking.Warehouse != nil && actor.ID == booking.Warehouse.OwnerID
	if !actor.HasRole(models.RoleAdmin) && !isMerchant && !isOwner {
		return nil, nil, ErrForbidden
	}

	events, err := s.eventRepo.FindByBooking(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return booking, events, nil
}

func (s *bookingService) ListByMerchant(ctx context.Context, actor *models.User, merchantID uint) ([]models.Booking, error) {
	isSelf := actor.HasRole(models.RoleMerchant) && actor.ID == merchantID
	if !actor.HasRole(models.RoleAdmin) && !isSelf {
		return nil, ErrForbidden
	}
	return s.bookingRepo.FindByMerchant(ctx, merchantID)
}

func (s *bookingService) ListByOwner(ctx context.Context, actor *models.User, ownerID uint) ([]models.Booking, error) {
	isSelf := actor.HasRole(models.RoleOwner) && actor.ID == ownerID
	if !actor.HasRole(models.RoleAdmin) && !isSelf {
		return nil, ErrForbidden
	}
	return s.bookingRepo.FindByWarehouseOwner(ctx, ownerID)
}

func (s *bookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAllWithRelations(ctx)
}
