package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkout, /orders のHTTP。
// チェックアウトはmultipart（受取人情報＋振込証明の添付）で受ける。
type CheckoutHandler struct {
	uc    *usecase.CheckoutUsecase
	store repository.AttachmentStore
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, store repository.AttachmentStore) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, store: store}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/checkout", h.checkout)
	g.GET("/orders", h.listMyOrders)
	g.GET("/orders/:id", h.myOrderDetail)
	g.GET("/history", h.listMyHistory)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	// リトライ時の二重注文防止キー（必須）
	idemKey := c.Request().Header.Get("X-Idempotency-Key")

	recipientName := c.FormValue("recipient_name")
	address := c.FormValue("address")
	contactNumber := c.FormValue("contact_number")

	// 振込証明の添付（任意）。先に保存してrefだけをusecaseに渡す。
	attachmentRef := ""
	if fh, err := c.FormFile("proof_of_transfer"); err == nil && fh != nil {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "attachment failed"})
		}
		defer src.Close()

		ref, err := h.store.Save(c.Request().Context(), fh.Filename, src)
		if err != nil {
			return writeAttachmentError(c, err)
		}
		attachmentRef = ref
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		RecipientName:  recipientName,
		Address:        address,
		ContactNumber:  contactNumber,
		AttachmentRef:  attachmentRef,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		if attachmentRef != "" {
			// 保存済みの添付はトランザクション外なので残る
			slog.Warn("checkout failed after attachment save", "user_id", userID, "attachment_ref", attachmentRef)
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CheckoutHandler) listMyOrders(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page, limit, err := pageAndLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) myOrderDetail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetMyOrderDetail(c.Request().Context(), userID, orderID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) listMyHistory(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page, limit, err := pageAndLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.ListMyHistory(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// page（default 1）とlimit（default 50）をクエリから読む
func pageAndLimit(c echo.Context) (int, int, error) {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.New("invalid page")
		}
		page = p
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.New("invalid limit")
		}
		limit = l
	}

	return page, limit, nil
}

// 添付の失敗をHTTPステータスへ写す（大きすぎ:413 / 形式不正:415）
func writeAttachmentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrAttachmentTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "attachment too large"})
	case errors.Is(err, repository.ErrAttachmentType):
		return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: "attachment type not allowed"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "attachment failed"})
}
