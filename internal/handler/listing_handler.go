package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/godownhub/marketplace/internal/dto"
	"github.com/godownhub/marketplace/internal/middleware"
	"github.com/godownhub/marketplace/internal/service"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo, authn *middleware.Authenticator) {
	g := e.Group("/listings", authn.Authenticate)
	g.GET("", h.ListListings)
	g.GET("/:id", h.GetListing)
	g.POST("", h.CreateListing)
	g.PUT("/:id", h.UpdateListing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	user := middleware.CurrentUser(c)

	listings, err := h.svc.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	listing, err := h.svc.Get(c.Request().Context(), user.ID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	listing, err := h.svc.Create(c.Request().Context(), user.ID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	var req dto.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	listing, err := h.svc.Update(c.Request().Context(), user.ID, uint(id), req)
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listing)
}
