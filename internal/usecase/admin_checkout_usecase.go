package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ライフサイクル管理の管理者側。
// 配送ステータス更新と、完了した注文の履歴への昇格を担当する。
type AdminCheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewAdminCheckoutUsecase(tx repo.TransactionManager) *AdminCheckoutUsecase {
	return &AdminCheckoutUsecase{tx: tx}
}

type UpdateShippingStatusInput struct {
	Status string
}

type HistoryItemOutput struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type HistoryOutput struct {
	ID               int64               `json:"id"`
	OrderID          int64               `json:"order_id"`
	UserID           int64               `json:"user_id"`
	RecipientName    string              `json:"recipient_name"`
	Address          string              `json:"address"`
	ContactNumber    string              `json:"contact_number"`
	AttachmentRef    string              `json:"attachment_ref,omitempty"`
	ShippingStatus   string              `json:"shipping_status"`
	CompletionStatus string              `json:"completion_status"`
	CompletedAt      time.Time           `json:"completed_at"`
	Items            []HistoryItemOutput `json:"items"`
}

// 注文一覧（管理者）
func (u *AdminCheckoutUsecase) ListCheckouts(ctx context.Context, f repo.AdminOrderListFilter) ([]OrderOutput, error) {
	// page/limitの最低限チェック
	if f.Page < 1 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 配送ステータス更新。注文行をロックしてから書くので
// 完了処理と同時に走っても順序が保証される。
func (u *AdminCheckoutUsecase) UpdateShippingStatus(ctx context.Context, actorAdminUserID int64, orderID int64, in UpdateShippingStatusInput) (OrderOutput, error) {
	if actorAdminUserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := strings.TrimSpace(in.Status)
	switch newStatus {
	case "PENDING", "SHIPPED", "DELIVERED":
		// OK
	default:
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		beforeStatus := string(o.ShippingStatus)

		// すでに同じなら書かずに返す（200）
		if beforeStatus != newStatus {
			if err := r.Orders().UpdateShippingStatus(ctx, orderID, model.ShippingStatus(newStatus)); err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "not found")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			// 監査ログ（UPDATE_SHIPPING_STATUS）
			beforeJSON := `{"shipping_status":"` + beforeStatus + `"}`
			afterJSON := `{"shipping_status":"` + newStatus + `"}`
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				ActorUserID:  actorAdminUserID,
				Action:       model.AuditActionUpdateShippingStatus,
				ResourceType: model.AuditResourceOrder,
				ResourceID:   orderID,
				BeforeJSON:   beforeJSON,
				AfterJSON:    afterJSON,
				CreatedAt:    time.Now(),
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		o.ShippingStatus = model.ShippingStatus(newStatus)

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// CompleteOrderは注文を履歴へ昇格する。
// 履歴の作成と注文の削除は同一トランザクション。どの瞬間にも
// 注文は「注文側か履歴側のどちらか一方」にしか見えない。
// 同じ注文への同時実行は行ロックで直列化され、後から来た方は404になる。
func (u *AdminCheckoutUsecase) CompleteOrder(ctx context.Context, actorAdminUserID int64, orderID int64) (HistoryOutput, error) {
	if actorAdminUserID <= 0 {
		return HistoryOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return HistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out HistoryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderItems, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 昇格時点の配送ステータスをそのまま引き継ぐ
		now := time.Now()
		h := model.History{
			OrderID:          o.ID,
			UserID:           o.UserID,
			RecipientName:    o.RecipientName,
			Address:          o.Address,
			ContactNumber:    o.ContactNumber,
			AttachmentRef:    o.AttachmentRef,
			ShippingStatus:   o.ShippingStatus,
			CompletionStatus: model.CompletionStatusCompleted,
			CompletedAt:      now,
			CreatedAt:        now,
		}

		historyID, err := r.Histories().Create(ctx, h)
		if err != nil {
			slog.Error("order promotion failed", "order_id", orderID, "actor_user_id", actorAdminUserID, "err", err)
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		hItems := make([]model.HistoryItem, 0, len(orderItems))
		for _, it := range orderItems {
			hItems = append(hItems, model.HistoryItem{
				ProductID:     it.ProductID,
				TitleSnapshot: it.TitleSnapshot,
				Variant:       it.Variant,
				Quantity:      it.Quantity,
			})
		}
		if err := r.Histories().CreateItemsBulk(ctx, historyID, hItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 注文側からは消す（ここで0件ならロック中に消えたので404）
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 監査ログ（COMPLETE_ORDER）
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actorAdminUserID,
			Action:       model.AuditActionCompleteOrder,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   `{"shipping_status":"` + string(o.ShippingStatus) + `"}`,
			AfterJSON:    `{"completion_status":"` + string(model.CompletionStatusCompleted) + `"}`,
			CreatedAt:    now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		h.ID = historyID
		out = toHistoryOutput(h, hItems)
		return nil
	})

	if err != nil {
		return HistoryOutput{}, err
	}
	return out, nil
}

// 履歴一覧（管理者）
func (u *AdminCheckoutUsecase) ListHistory(ctx context.Context, page int, limit int) ([]HistoryOutput, error) {
	if page < 1 {
		return []HistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []HistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []HistoryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		histories, _, err := r.Histories().ListAll(ctx, page, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]HistoryOutput, 0, len(histories))
		for _, h := range histories {
			items, err := r.Histories().ListItemsByHistoryID(ctx, h.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toHistoryOutput(h, items))
		}
		return nil
	})

	if err != nil {
		return []HistoryOutput{}, err
	}
	return outs, nil
}

// 監査ログ一覧（管理者）
func (u *AdminCheckoutUsecase) ListAuditLogs(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	if f.Limit < 1 || f.Limit > 100 {
		return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if f.Offset < 0 {
		return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid offset")
	}

	var logs []model.AuditLog

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		logs, err = r.AuditLogs().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return []model.AuditLog{}, err
	}
	return logs, nil
}

func toHistoryOutput(h model.History, items []model.HistoryItem) HistoryOutput {
	outItems := make([]HistoryItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, HistoryItemOutput{
			ProductID: it.ProductID,
			Title:     it.TitleSnapshot,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
		})
	}

	return HistoryOutput{
		ID:               h.ID,
		OrderID:          h.OrderID,
		UserID:           h.UserID,
		RecipientName:    h.RecipientName,
		Address:          h.Address,
		ContactNumber:    h.ContactNumber,
		AttachmentRef:    h.AttachmentRef,
		ShippingStatus:   string(h.ShippingStatus),
		CompletionStatus: string(h.CompletionStatus),
		CompletedAt:      h.CompletedAt,
		Items:            outItems,
	}
}
