package server

import (
	"shop/internal/config"
	"shop/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlersはルーティングに載せるハンドラ一式
type Handlers struct {
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Banner   *handler.BannerHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Auth     *handler.AuthHandler

	AdminProduct  *handler.AdminProductHandler
	AdminCategory *handler.AdminCategoryHandler
	AdminBanner   *handler.AdminBannerHandler
	AdminOrder    *handler.AdminOrderHandler
	AdminUser     *handler.AdminUserHandler
	AdminAuditLog *handler.AdminAuditLogHandler
	Dashboard     *handler.DashboardHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Product.RegisterRoutes(e)
	h.Category.RegisterRoutes(e)
	h.Banner.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e, cfg)

	h.AdminProduct.RegisterRoutes(e, cfg)
	h.AdminCategory.RegisterRoutes(e, cfg)
	h.AdminBanner.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.AdminUser.RegisterRoutes(e, cfg)
	h.AdminAuditLog.RegisterRoutes(e, cfg)
	h.Dashboard.RegisterRoutes(e, cfg)
}
