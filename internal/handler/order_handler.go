package handler

import (
	"net/http"

	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// チェックアウトと注文照会の公開API
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CheckoutRequest struct {
	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingEmail   string `json:"shipping_email"`
	ShippingAddress string `json:"shipping_address"`
	Notes           string `json:"notes"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.Use(middleware.Session())

	g.POST("", h.checkout)
	g.GET("/:order_number", h.detail)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), sessionID, usecase.PlaceOrderInput{
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingEmail:   req.ShippingEmail,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

// 注文完了ページが注文番号で照会する
func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.GetByOrderNumber(c.Request().Context(), c.Param("order_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
