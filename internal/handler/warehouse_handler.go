package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/godownhub/marketplace/internal/dto"
	"github.com/godownhub/marketplace/internal/middleware"
	"github.com/godownhub/marketplace/internal/repository"
	"github.com/godownhub/marketplace/internal/service"
	"github.com/labstack/echo/v4"
)

type WarehouseHandler struct {
	svc service.WarehouseService
}

func NewWarehouseHandler(svc service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

func (h *WarehouseHandler) RegisterRoutes(e *echo.Echo, authn *middleware.Authenticator) {
	g := e.Group("/warehouses")
	g.GET("", h.ListWarehouses)
	g.GET("/search", h.SearchWarehouses)
	g.GET("/owner/:id", h.ListByOwner)
	g.GET("/:id", h.GetWarehouse)
	g.DELETE("/:id", h.DeleteWarehouse, authn.Authenticate)
}

func (h *WarehouseHandler) ListWarehouses(c echo.Context) error {
	take, _ := strconv.Atoi(c.QueryParam("take"))

	warehouses, err := h.svc.Latest(c.Request().Context(), take)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.WarehouseListResponse{Warehouses: warehouses})
}

func (h *WarehouseHandler) SearchWarehouses(c echo.Context) error {
	filter := repository.WarehouseSearch{Q: c.QueryParam("q")}
	if v := c.QueryParam("minSqFt"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinSqFt = &f
		}
	}
	if v := c.QueryParam("maxSqFt"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxSqFt = &f
		}
	}

	warehouses, err := h.svc.Search(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouses)
}

func (h *WarehouseHandler) ListByOwner(c echo.Context) error {
	ownerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid owner id")
	}

	warehouses, err := h.svc.ListByOwner(c.Request().Context(), uint(ownerID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouses)
}

func (h *WarehouseHandler) GetWarehouse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	warehouse, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrWarehouseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouse)
}

func (h *WarehouseHandler) DeleteWarehouse(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid warehouse id")
	}

	if err := h.svc.Delete(c.Request().Context(), user, uint(id)); err != nil {
		switch {
		case errors.Is(err, service.ErrWarehouseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
