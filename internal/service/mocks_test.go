package service

import (
	"context"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/notifier"
	"github.com/godownhub/marketplace/internal/repository"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	findByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
	findAllFn     func(ctx context.Context) ([]models.User, error)
	updateRolesFn func(ctx context.Context, id uint, roles []string) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) UpdateRoles(ctx context.Context, id uint, roles []string) error {
	return m.updateRolesFn(ctx, id, roles)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock ListingRepository ---

type mockListingRepo struct {
	createFn        func(ctx context.Context, listing *models.Listing) error
	findByIDOwnerFn func(ctx context.Context, id, ownerID uint) (*models.Listing, error)
	findByOwnerFn   func(ctx context.Context, ownerID uint) ([]models.Listing, error)
	findPublishedFn func(ctx context.Context) ([]models.Listing, error)
	saveFn          func(ctx context.Context, listing *models.Listing) error
}

func (m *mockListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	return m.createFn(ctx, listing)
}
func (m *mockListingRepo) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Listing, error) {
	return m.findByIDOwnerFn(ctx, id, ownerID)
}
func (m *mockListingRepo) FindByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error) {
	return m.findByOwnerFn(ctx, ownerID)
}
func (m *mockListingRepo) FindPublished(ctx context.Context) ([]models.Listing, error) {
	return m.findPublishedFn(ctx)
}
func (m *mockListingRepo) Save(ctx context.Context, listing *models.Listing) error {
	return m.saveFn(ctx, listing)
}

// --- Mock WarehouseRepository ---

type mockWarehouseRepo struct {
	createFn              func(ctx context.Context, warehouse *models.Warehouse) error
	findByIDFn            func(ctx context.Context, id uint) (*models.Warehouse, error)
	findByIDWithOwnerFn   func(ctx context.Context, id uint) (*models.Warehouse, error)
	findBySourceListingFn func(ctx context.Context, listingID uint) (*models.Warehouse, error)
	findLatestFn          func(ctx context.Context, limit int) ([]models.Warehouse, error)
	findByOwnerFn         func(ctx context.Context, ownerID uint) ([]models.Warehouse, error)
	setApprovalFn         func(ctx context.Context, id uint, approved bool) error
	setDisabledFn         func(ctx context.Context, id uint, disabled bool) error
	deleteFn              func(ctx context.Context, id uint) error
}

func (m *mockWarehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	return m.createFn(ctx, warehouse)
}
func (m *mockWarehouseRepo) FindByID(ctx context.Context, id uint) (*models.Warehouse, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockWarehouseRepo) FindByIDWithOwner(ctx context.Context, id uint) (*models.Warehouse, error) {
	if m.findByIDWithOwnerFn != nil {
		return m.findByIDWithOwnerFn(ctx, id)
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockWarehouseRepo) FindBySourceListing(ctx context.Context, listingID uint) (*models.Warehouse, error) {
	return m.findBySourceListingFn(ctx, listingID)
}
func (m *mockWarehouseRepo) FindLatest(ctx context.Context, limit int) ([]models.Warehouse, error) {
	if m.findLatestFn != nil {
		return m.findLatestFn(ctx, limit)
	}
	return nil, nil
}
func (m *mockWarehouseRepo) FindByOwner(ctx context.Context, ownerID uint) ([]models.Warehouse, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}
func (m *mockWarehouseRepo) FindAllWithOwner(ctx context.Context) ([]models.Warehouse, error) {
	return nil, nil
}
func (m *mockWarehouseRepo) Search(ctx context.Context, filter repository.WarehouseSearch) ([]models.Warehouse, error) {
	return nil, nil
}
func (m *mockWarehouseRepo) SetApproval(ctx context.Context, id uint, approved bool) error {
	return m.setApprovalFn(ctx, id, approved)
}
func (m *mockWarehouseRepo) SetDisabled(ctx context.Context, id uint, disabled bool) error {
	return m.setDisabledFn(ctx, id, disabled)
}
func (m *mockWarehouseRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	db *gorm.DB

	createFn            func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findByIDRelationsFn func(ctx context.Context, id uint) (*models.Booking, error)
	findForUpdateFn     func(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	findByMerchantFn    func(ctx context.Context, merchantID uint) ([]models.Booking, error)
	findByOwnerFn       func(ctx context.Context, ownerID uint) ([]models.Booking, error)
	updateStatusFn      func(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return m.createFn(ctx, tx, booking)
}
func (m *mockBookingRepo) FindByIDWithRelations(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDRelationsFn(ctx, id)
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	return m.findForUpdateFn(ctx, tx, id)
}
func (m *mockBookingRepo) FindByMerchant(ctx context.Context, merchantID uint) ([]models.Booking, error) {
	return m.findByMerchantFn(ctx, merchantID)
}
func (m *mockBookingRepo) FindByWarehouseOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	return m.findByOwnerFn(ctx, ownerID)
}
func (m *mockBookingRepo) FindAllWithRelations(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return m.updateStatusFn(ctx, tx, bookingID, status)
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return m.db }

// --- Mock BookingEventRepository ---

type mockEventRepo struct {
	appendFn        func(ctx context.Context, tx *gorm.DB, event *models.BookingEvent) error
	findByBookingFn func(ctx context.Context, bookingID uint) ([]models.BookingEvent, error)
}

func (m *mockEventRepo) Append(ctx context.Context, tx *gorm.DB, event *models.BookingEvent) error {
	return m.appendFn(ctx, tx, event)
}
func (m *mockEventRepo) FindByBooking(ctx context.Context, bookingID uint) ([]models.BookingEvent, error) {
	if m.findByBookingFn != nil {
		return m.findByBookingFn(ctx, bookingID)
	}
	return nil, nil
}

// --- Mock notifier.Sender ---

type mockSender struct {
	sendFn func(ctx context.Context, msg notifier.Message) error
	sent   []notifier.Message
}

func (m *mockSender) Send(ctx context.Context, msg notifier.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFn != nil {
		return m.sendFn(ctx, msg)
	}
	return nil
}

// --- Mock Promoter ---

type mockPromoter struct {
	promoteFn  func(ctx context.Context, listing *models.Listing) (*models.Warehouse, error)
	backfillFn func(ctx context.Context, dryRun bool) (*BackfillResult, error)
}

func (m *mockPromoter) Promote(ctx context.Context, listing *models.Listing) (*models.Warehouse, error) {
	return m.promoteFn(ctx, listing)
}
func (m *mockPromoter) Backfill(ctx context.Context, dryRun bool) (*BackfillResult, error) {
	return m.backfillFn(ctx, dryRun)
}
