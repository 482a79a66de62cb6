package dto

type RegisterRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=8"`
	Roles         []string `json:"roles" validate:"required,min=1,dive,oneof=MERCHANT WAREHOUSE_OWNER ADMIN"`
	ContactNumber *string  `json:"contact_number"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateListingRequest struct {
	Title          string         `json:"title"`
	Status         string         `json:"status"`
	Description    *string        `json:"description"`
	Address        map[string]any `json:"address"`
	Use            map[string]any `json:"use"`
	Amenities      map[string]any `json:"amenities"`
	Approvals      map[string]any `json:"approvals"`
	Qualifications map[string]any `json:"qualifications"`
	Pricing        map[string]any `json:"pricing"`
	Hours          map[string]any `json:"hours"`
	Services       map[string]any `json:"services"`
}

// UpdateListingRequest is a partial patch: nil means "leave unchanged".
type UpdateListingRequest struct {
	Title          *string        `json:"title"`
	Status         *string        `json:"status"`
	Description    *string        `json:"description"`
	Address        map[string]any `json:"address"`
	Use            map[string]any `json:"use"`
	Amenities      map[string]any `json:"amenities"`
	Approvals      map[string]any `json:"approvals"`
	Qualifications map[string]any `json:"qualifications"`
	Pricing        map[string]any `json:"pricing"`
	Hours          map[string]any `json:"hours"`
	Services       map[string]any `json:"services"`
}

type CreateBookingRequest struct {
	WarehouseID uint `json:"warehouse_id" validate:"required"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingMessageRequest struct {
	BookingID uint   `json:"booking_id" validate:"required"`
	Message   string `json:"message"`
}

type GrantRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=MERCHANT WAREHOUSE_OWNER ADMIN"`
}

type ApproveWarehouseRequest struct {
	IsApproved bool `json:"is_approved"`
}

type DisableWarehouseRequest struct {
	IsDisabled bool `json:"is_disabled"`
}
