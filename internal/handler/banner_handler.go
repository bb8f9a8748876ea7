package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /banners の公開API（トップページ用）
type BannerHandler struct {
	uc *usecase.BannerUsecase
}

func NewBannerHandler(uc *usecase.BannerUsecase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

func (h *BannerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/banners", h.list)
}

func (h *BannerHandler) list(c echo.Context) error {
	banners, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, banners)
}
