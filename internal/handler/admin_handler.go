package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/godownhub/marketplace/internal/dto"
	"github.com/godownhub/marketplace/internal/middleware"
	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	userSvc      service.UserService
	warehouseSvc service.WarehouseService
	bookingSvc   service.BookingService
	promoter     service.Promoter
}

func NewAdminHandler(
	userSvc service.UserService,
	warehouseSvc service.WarehouseService,
	bookingSvc service.BookingService,
	promoter service.Promoter,
) *AdminHandler {
	return &AdminHandler{
		userSvc:      userSvc,
		warehouseSvc: warehouseSvc,
		bookingSvc:   bookingSvc,
		promoter:     promoter,
	}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, authn *middleware.Authenticator) {
	g := e.Group("/admin", authn.Authenticate, middleware.RequireRoles(models.RoleAdmin))
	g.GET("/users", h.ListUsers)
	g.PUT("/users/:id/role", h.GrantRole)
	g.DELETE("/users/:id", h.DeleteUser)
	g.GET("/warehouses", h.ListWarehouses)
	g.PUT("/warehouses/:id/approve", h.ApproveWarehouse)
	g.PUT("/warehouses/:id/disable", h.DisableWarehouse)
	g.DELETE("/warehouses/:id", h.DeleteWarehouse)
	g.GET("/bookings", h.ListBookings)
	g.POST("/backfill", h.RunBackfill)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userSvc.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.ToUserResponse(&users[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GrantRole(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req dto.GrantRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.Role = strings.ToUpper(req.Role)
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userSvc.GrantRole(c.Request().Context(), uint(id), req.Role)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.userSvc.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) ListWarehouses(c echo.Context) error {
	warehouses, err := h.warehouseSvc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouses)
}

func (h *AdminHandler) ApproveWarehouse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	var req dto.ApproveWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	warehouse, err := h.warehouseSvc.SetApproval(c.Request().Context(), uint(id), req.IsApproved)
	if err != nil {
		if errors.Is(err, service.ErrWarehouseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouse)
}

func (h *AdminHandler) DisableWarehouse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	var req dto.DisableWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	warehouse, err := h.warehouseSvc.SetDisabled(c.Request().Context(), uint(id), req.IsDisabled)
	if err != nil {
		if errors.Is(err, service.ErrWarehouseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouse)
}

func (h *AdminHandler) DeleteWarehouse(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	if err := h.warehouseSvc.Delete(c.Request().Context(), user, uint(id)); err != nil {
		if errors.Is(err, service.ErrWarehouseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingSvc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingSummaryResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingSummaryResponse(&bookings[i], true)
	}
	return c.JSON(http.StatusOK, resp)
}

// RunBackfill promotes published listings that never got a warehouse.
// With ?dry_run=1 it only reports what it would create.
func (h *AdminHandler) RunBackfill(c echo.Context) error {
	dryRun := c.QueryParam("dry_run") == "1" || c.QueryParam("dry_run") == "true"

	result, err := h.promoter.Backfill(c.Request().Context(), dryRun)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
