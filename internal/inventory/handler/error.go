package handler

import (
	"net/http"

	"inventory/internal/inventory/model"
	"inventory/internal/inventory/service"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(c echo.Context, err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch err {
	case service.ErrConflict:
		status = http.StatusConflict
		code = "conflict"
		msg = "Item name already exists"
	case service.ErrNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Item not found"
	case service.ErrBadRequest:
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	case service.ErrUnauthorized:
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg, RequestID: requestID(c)},
	}
}

// validationError wraps a Validate() failure in the error envelope
func validationError(c echo.Context, err error) (int, interface{}) {
	detail := model.ErrorDetail{Code: "bad_request", Message: err.Error()}
	if d, ok := err.(*model.ErrorDetail); ok {
		detail = *d
	}
	detail.RequestID = requestID(c)

	return http.StatusBadRequest, model.ErrorResponse{Error: detail}
}

// bindError reports a request that could not be decoded at all
func bindError(c echo.Context, msg string) (int, interface{}) {
	return http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: msg, RequestID: requestID(c)},
	}
}

// requestID reads the ID stamped on the response by RequestIDMiddleware.
// Routes outside the middleware produce an empty ID, which is omitted.
func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
