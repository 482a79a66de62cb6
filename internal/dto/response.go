package dto

import (
	"strings"
	"time"

	"github.com/godownhub/marketplace/internal/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Roles         []string  `json:"roles"`
	Role          string    `json:"role"`
	ContactNumber *string   `json:"contact_number,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type BookingResponse struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingHistoryEntry struct {
	Status string    `json:"status"`
	Note   *string   `json:"note,omitempty"`
	Date   time.Time `json:"date"`
}

type PartyResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ContactNumber *string `json:"contact_number,omitempty"`
}

type BookingWarehouseResponse struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Address *string        `json:"address"`
	City    *string        `json:"city"`
	State   *string        `json:"state"`
	Pincode *string        `json:"pincode"`
	Owner   *PartyResponse `json:"owner,omitempty"`
}

type BookingDetailResponse struct {
	ID            uint                     `json:"id"`
	Status        string                   `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	StatusHistory []BookingHistoryEntry    `json:"statusHistory"`
	Warehouse     BookingWarehouseResponse `json:"warehouse"`
	Merchant      *PartyResponse           `json:"merchant,omitempty"`
}

type BookingSummaryResponse struct {
	ID        uint                      `json:"id"`
	Status    string                    `json:"status"`
	CreatedAt time.Time                 `json:"created_at"`
	Warehouse *BookingWarehouseResponse `json:"warehouse,omitempty"`
	Merchant  *PartyResponse            `json:"merchant,omitempty"`
}

type WarehouseListResponse struct {
	Warehouses []models.Warehouse `json:"warehouses"`
}

// UIStatus lowercases a booking status for the client-facing shape.
func UIStatus(s models.BookingStatus) string {
	return strings.ToLower(string(s))
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Roles:         u.Roles,
		Role:          models.PrimaryRole(u.Roles),
		ContactNumber: u.ContactNumber,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Status:    UIStatus(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toParty(u *models.User, withContact bool) *PartyResponse {
	if u == nil {
		return nil
	}
	p := &PartyResponse{ID: u.ID, Name: u.Name, Email: u.Email}
	if withContact {
		p.ContactNumber = u.ContactNumber
	}
	return p
}

func toBookingWarehouse(w *models.Warehouse, withOwner bool) BookingWarehouseResponse {
	if w == nil {
		return BookingWarehouseResponse{}
	}
	resp := BookingWarehouseResponse{
		ID:      w.ID,
		Name:    w.Name,
		Address: w.Address,
		City:    w.City,
		State:   w.State,
		Pincode: w.Pincode,
	}
	if withOwner {
		resp.Owner = toParty(w.Owner, true)
	}
	return resp
}

func ToBookingDetailResponse(b *models.Booking, events []models.BookingEvent) BookingDetailResponse {
	history := make([]BookingHistoryEntry, len(events))
	for i, e := range events {
		history[i] = BookingHistoryEntry{
			Status: UIStatus(e.Status),
			Note:   e.Note,
			Date:   e.CreatedAt,
		}
	}
	return BookingDetailResponse{
		ID:            b.ID,
		Status:        UIStatus(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		StatusHistory: history,
		Warehouse:     toBookingWarehouse(b.Warehouse, true),
		Merchant:      toParty(b.Merchant, false),
	}
}

func ToBookingSummaryResponse(b *models.Booking, includeMerchant bool) BookingSummaryResponse {
	resp := BookingSummaryResponse{
		ID:        b.ID,
		Status:    UIStatus(b.Status),
		CreatedAt: b.CreatedAt,
	}
	if b.Warehouse != nil {
		w := toBookingWarehouse(b.Warehouse, false)
		resp.Warehouse = &w
	}
	if includeMerchant {
		resp.Merchant = toParty(b.Merchant, false)
	}
	return resp
}
