//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/notifier"
	"github.com/godownhub/marketplace/internal/repository"
	"github.com/godownhub/marketplace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type noopSender struct{}

func (noopSender) Send(ctx context.Context, msg notifier.Message) error { return nil }

func createUser(t *testing.T, name string, roles ...string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		Roles:        roles,
		IsActive:     true,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func createWarehouse(t *testing.T, ownerID uint, approved bool) *models.Warehouse {
	t.Helper()
	w := &models.Warehouse{
		OwnerID:    ownerID,
		Name:       "Okhla Logistics Hub",
		IsApproved: approved,
		Status:     models.WarehousePublished,
	}
	require.NoError(t, testDB.Create(w).Error)
	return w
}

func newBookingService() service.BookingService {
	bookingRepo := repository.NewBookingRepository(testDB)
	eventRepo := repository.NewBookingEventRepository(testDB)
	warehouseRepo := repository.NewWarehouseRepository(testDB)
	return service.NewBookingService(bookingRepo, eventRepo, warehouseRepo, noopSender{})
}

func newPromoter() service.Promoter {
	listingRepo := repository.NewListingRepository(testDB)
	warehouseRepo := repository.NewWarehouseRepository(testDB)
	return service.NewPromoter(listingRepo, warehouseRepo)
}

func TestBookingLifecycleWithHistory(t *testing.T) {
	cleanTables()
	owner := createUser(t, "owner-a", models.RoleOwner)
	merchant := createUser(t, "merchant-a", models.RoleMerchant)
	warehouse := createWarehouse(t, owner.ID, true)
	svc := newBookingService()

	booking, err := svc.Create(context.Background(), merchant, warehouse.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)

	accepted, err := svc.Transition(context.Background(), owner, booking.ID, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	require.NoError(t, svc.AttachNote(context.Background(), owner, booking.ID, "Gate opens at 7am"))

	_, events, err := svc.GetDetail(context.Background(), merchant, booking.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, models.StatusPending, events[0].Status)
	assert.Equal(t, models.StatusAccepted, events[1].Status)
	assert.Equal(t, models.StatusAccepted, events[2].Status)
	require.NotNil(t, events[2].Note)
	assert.Equal(t, "OWNER_MSG: Gate opens at 7am", *events[2].Note)
}

// Ten owners race to resolve the same pending booking: the row lock admits
// exactly one transition, the rest fail validation against the settled status.
func TestConcurrentTransitionsSettleOnce(t *testing.T) {
	cleanTables()
	owner := createUser(t, "owner-b", models.RoleOwner)
	merchant := createUser(t, "merchant-b", models.RoleMerchant)
	warehouse := createWarehouse(t, owner.ID, true)
	svc := newBookingService()

	booking, err := svc.Create(context.Background(), merchant, warehouse.ID)
	require.NoError(t, err)

	attempts := 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	invalid := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		target := models.StatusAccepted
		if i%2 == 1 {
			target = models.StatusRejected
		}
		go func(target models.BookingStatus) {
			defer wg.Done()
			_, err := svc.Transition(context.Background(), owner, booking.ID, target)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, service.ErrInvalidTransition):
				invalid++
			}
		}(target)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded, "exactly one transition should win")
	assert.Equal(t, attempts-1, invalid)

	var eventCount int64
	testDB.Model(&models.BookingEvent{}).Where("booking_id = ?", booking.ID).Count(&eventCount)
	assert.Equal(t, int64(2), eventCount, "PENDING plus the single winning transition")
}

func TestBookingRequiresApprovedWarehouse(t *testing.T) {
	cleanTables()
	owner := createUser(t, "owner-c", models.RoleOwner)
	merchant := createUser(t, "merchant-c", models.RoleMerchant)
	warehouse := createWarehouse(t, owner.ID, false)
	svc := newBookingService()

	_, err := svc.Create(context.Background(), merchant, warehouse.ID)
	assert.ErrorIs(t, err, service.ErrNotBookable)
}

// Concurrent promotions of the same listing: the unique index on the
// provenance column guarantees a single warehouse row.
func TestConcurrentPromotionCreatesOneWarehouse(t *testing.T) {
	cleanTables()
	owner := createUser(t, "owner-d", models.RoleOwner)

	listing := &models.Listing{
		OwnerID: owner.ID,
		Status:  models.ListingPublished,
		Title:   "Okhla Ambient Storage",
		Address: datatypes.JSONMap{
			"addressLine1": "A-12, Okhla Phase II",
			"city":         "Delhi",
			"state":        "DL",
			"zip":          "110020",
		},
		Pricing: datatypes.JSONMap{"totalSqFt": float64(20000), "ratePerSqFtPerMonth": 22.5},
	}
	require.NoError(t, testDB.Create(listing).Error)

	p := newPromoter()
	attempts := 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := p.Promote(context.Background(), listing)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else {
				assert.ErrorIs(t, err, service.ErrAlreadyPromoted)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created, "exactly one promotion should create a row")

	var count int64
	testDB.Model(&models.Warehouse{}).Where("source_listing_id = ?", listing.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBackfillIsIdempotent(t *testing.T) {
	cleanTables()
	owner := createUser(t, "owner-e", models.RoleOwner)

	for i := 0; i < 3; i++ {
		listing := &models.Listing{
			OwnerID: owner.ID,
			Status:  models.ListingPublished,
			Title:   fmt.Sprintf("Listing %d", i),
			Address: datatypes.JSONMap{"addressLine1": "A-12", "city": "Delhi", "state": "DL", "zip": "110020"},
		}
		require.NoError(t, testDB.Create(listing).Error)
	}

	p := newPromoter()

	first, err := p.Backfill(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Created)
	assert.Equal(t, 0, first.Skipped)

	second, err := p.Backfill(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Skipped)

	var count int64
	testDB.Model(&models.Warehouse{}).Count(&count)
	assert.Equal(t, int64(3), count)
}
