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

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, authn *middleware.Authenticator) {
	g := e.Group("/bookings", authn.Authenticate)
	g.POST("", h.CreateBooking, middleware.RequireRoles(models.RoleMerchant))
	g.POST("/message", h.MessageMerchant, middleware.RequireRoles(models.RoleOwner))
	g.GET("/merchant/:id", h.ListByMerchant)
	g.GET("/owner/:id", h.ListByOwner)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.TransitionBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.Create(c.Request().Context(), user, req.WarehouseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrWarehouseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotBookable):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) TransitionBooking(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.TransitionBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	target := models.BookingStatus(strings.ToUpper(req.Status))
	booking, err := h.svc.Transition(c.Request().Context(), user, uint(id), target)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) MessageMerchant(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req dto.BookingMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.svc.AttachNote(c.Request().Context(), user, req.BookingID, req.Message); err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, events, err := h.svc.GetDetail(c.Request().Context(), user, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingDetailResponse(booking, events))
}

func (h *BookingHandler) ListByMerchant(c echo.Context) error {
	user := middleware.CurrentUser(c)
	merchantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid merchant id")
	}

	bookings, err := h.svc.ListByMerchant(c.Request().Context(), user, uint(merchantID))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingSummaryResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingSummaryResponse(&bookings[i], false)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListByOwner(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid owner id")
	}

	bookings, err := h.svc.ListByOwner(c.Request().Context(), user, uint(ownerID))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingSummaryResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingSummaryResponse(&bookings[i], true)
	}
	return c.JSON(http.StatusOK, resp)
}
