package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/dilshat/social-media/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	malfunction    = "System malfunction. Please, try later"
	invalidPayload = "Invalid request body"
)

//decodeBody decodes JSON request body into v; an empty body leaves v untouched
func decodeBody(c echo.Context, v interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

func pathId(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	return id, err == nil
}

//respondError maps service error kinds onto statuses, anything else is a 500
func respondError(c echo.Context, err error) error {
	kind, ok := service.KindOf(err)
	if !ok {
		zap.L().Error("Request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.String(http.StatusInternalServerError, malfunction)
	}

	switch kind {
	case service.InvalidCredentials:
		return c.String(http.StatusUnauthorized, err.Error())
	case service.DuplicateUsername:
		return c.String(http.StatusConflict, err.Error())
	default:
		return c.String(http.StatusBadRequest, err.Error())
	}
}

//respond writes v as JSON, or an empty 200 when v is a nil pointer
func respond(c echo.Context, v interface{}, present bool) error {
	if !present {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, v)
}
