package handler

import (
	"net/http"

	"inventory/internal/inventory/model"
	"inventory/internal/inventory/service"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	Service service.ItemService
}

func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ItemHandler) extractCallerID(c echo.Context) (string, error) {
	callerID := c.Request().Header.Get("x-user-id")
	if callerID == "" {
		return "", service.ErrUnauthorized
	}
	return callerID, nil
}

// PostItem handles POST /items
func (h *ItemHandler) PostItem(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	var req model.CreateItemReq
	if err := c.Bind(&req); err != nil {
		code, body := bindError(c, "Invalid body")
		return c.JSON(code, body)
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(c, err)
		return c.JSON(code, body)
	}

	item, err := h.Service.CreateItem(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, item)
}

// GetItem handles GET /items/:name
func (h *ItemHandler) GetItem(c echo.Context) error {
	name := c.Param("name")

	item, err := h.Service.GetItem(c.Request().Context(), name)
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, item)
}

// GetItems handles GET /items
func (h *ItemHandler) GetItems(c echo.Context) error {
	var req model.ListItemsReq
	if err := c.Bind(&req); err != nil {
		code, body := bindError(c, "Invalid parameters")
		return c.JSON(code, body)
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(c, err)
		return c.JSON(code, body)
	}

	items, err := h.Service.ListItems(c.Request().Context(), req.Filter())
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, items)
}

// PutItem handles PUT /items/:name
func (h *ItemHandler) PutItem(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	name := c.Param("name")

	var req model.UpdateItemReq
	if err := c.Bind(&req); err != nil {
		code, body := bindError(c, "Invalid body")
		return c.JSON(code, body)
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(c, err)
		return c.JSON(code, body)
	}

	item, err := h.Service.UpdateItem(c.Request().Context(), callerID, name, req)
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /items/:name
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	name := c.Param("name")

	if err := h.Service.DeleteItem(c.Request().Context(), callerID, name); err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
