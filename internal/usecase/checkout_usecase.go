package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 受取人情報の検証の約束（実装はvalidatorパッケージ）。
type CheckoutValidator interface {
	ValidateRecipient(recipientName string, address string, contactNumber string) error
}

// カート→注文の変換を担うライフサイクル管理のユーザー側。
type CheckoutUsecase struct {
	tx        repo.TransactionManager
	resolver  *SnapshotResolver
	validator CheckoutValidator
}

func NewCheckoutUsecase(tx repo.TransactionManager, resolver *SnapshotResolver, v CheckoutValidator) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, resolver: resolver, validator: v}
}

type CheckoutInput struct {
	RecipientName  string
	Address        string
	ContactNumber  string
	AttachmentRef  string // 空なら添付なし
	IdempotencyKey string
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	RecipientName  string            `json:"recipient_name"`
	Address        string            `json:"address"`
	ContactNumber  string            `json:"contact_number"`
	AttachmentRef  string            `json:"attachment_ref,omitempty"`
	ShippingStatus string            `json:"shipping_status"`
	CreatedAt      time.Time         `json:"created_at"`
	Items          []OrderItemOutput `json:"items"`
}

// Checkoutはカートを注文スナップショットへ変換する。
// スナップショット解決・注文作成・カートのクリアを1トランザクションで行い、
// 途中で失敗したら何も残さない（カートもそのまま）。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validator.ValidateRecipient(in.RecipientName, in.Address, in.ContactNumber); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = toOrderOutput(existing, items)
			return nil
		}

		// カート行をロック（同一ユーザーの二重チェックアウト防止）
		cart, err := r.Carts().FindByUserIDForUpdate(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		// この時点のタイトルでスナップショットを固定
		orderItems, err := u.resolver.Resolve(ctx, r.Products(), cartItems)
		if err != nil {
			if errors.Is(err, ErrProductGone) {
				// 内部事情は返さない。診断用にだけ残す。
				slog.Error("checkout aborted: unresolved product", "user_id", userID, "err", err)
				return NewHTTPError(http.StatusInternalServerError, "checkout failed")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:         userID,
			RecipientName:  in.RecipientName,
			Address:        in.Address,
			ContactNumber:  in.ContactNumber,
			AttachmentRef:  in.AttachmentRef,
			ShippingStatus: model.ShippingStatusPending,
			IdempotencyKey: key,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			//競合（同時で同じキーが入った等）はもう一回検索して同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, userID, key)
			if err2 == nil && found2 {
				items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
				if err3 != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(ex2, items2)
				return nil
			}
			return NewHTTPError(http.StatusBadRequest, "idempotency conflict")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 注文が入ったカートは空にする（レコードは残す）
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created := model.Order{
			ID:             orderID,
			UserID:         userID,
			RecipientName:  in.RecipientName,
			Address:        in.Address,
			ContactNumber:  in.ContactNumber,
			AttachmentRef:  in.AttachmentRef,
			ShippingStatus: model.ShippingStatusPending,
			CreatedAt:      now,
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *CheckoutUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, page, limit)
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

func (u *CheckoutUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(http.StatusNotFound, "not found")
		}

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

// 自分の完了済み注文（履歴）の一覧。
func (u *CheckoutUsecase) ListMyHistory(ctx context.Context, userID int64, page int, limit int) ([]HistoryOutput, error) {
	if userID <= 0 {
		return []HistoryOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return []HistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []HistoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []HistoryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		histories, _, err := r.Histories().ListByUserID(ctx, userID, page, limit)
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

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Title:     it.TitleSnapshot,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:             o.ID,
		UserID:         o.UserID,
		RecipientName:  o.RecipientName,
		Address:        o.Address,
		ContactNumber:  o.ContactNumber,
		AttachmentRef:  o.AttachmentRef,
		ShippingStatus: string(o.ShippingStatus),
		CreatedAt:      o.CreatedAt,
		Items:          outItems,
	}
}
