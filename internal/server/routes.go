package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// 公開
	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)

	// 要ログイン
	h.Cart.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)

	// 管理者のみ
	h.AdminCheckout.RegisterRoutes(e, cfg)
	h.AdminProduct.RegisterRoutes(e, cfg)

	// 振込証明の配信（保存先をそのまま公開）
	e.Static("/uploads", cfg.UploadDir)
}
