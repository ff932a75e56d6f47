package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JusticeOpara/real-estate-hub/query"
)

// Response is the envelope every endpoint returns: {success, data} on the
// happy path, {success: false, message} on failure.
type Response struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message,omitempty"`
	Data       interface{}           `json:"data,omitempty"`
	Errors     map[string]string     `json:"errors,omitempty"`
	Pagination *query.PaginationMeta `json:"pagination,omitempty"`
}

func OK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Response{Success: true, Data: data})
}

func OKMessage(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func OKList(c echo.Context, status int, data interface{}, meta query.PaginationMeta) error {
	return c.JSON(status, Response{Success: true, Data: data, Pagination: &meta})
}

func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Message: message})
}

func FailValidation(c echo.Context, message string, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, Response{Success: false, Message: message, Errors: fields})
}
