package handler

import (
	"net/http"

	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// usecaseのエラー種別をHTTPステータスへ変換する
func statusOf(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindValidation, usecase.KindEmptyCart, usecase.KindInvalidStatus:
		return http.StatusBadRequest
	case usecase.KindInsufficientStock, usecase.KindConflict:
		return http.StatusConflict
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ue, ok := usecase.AsError(err); ok {
		return c.JSON(statusOf(ue.Kind), ErrorResponse{Error: ue.Message, Kind: string(ue.Kind)})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}
	return id, true
}

func getSessionIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxSessionIDKey)
	if v == nil {
		return "", false
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
