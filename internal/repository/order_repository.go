package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page           int
	Limit          int
	ShippingStatus string
	UserID         *int64
	From           *time.Time
	To             *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateShippingStatus(ctx context.Context, orderID int64, status model.ShippingStatus) error

	// 履歴への昇格で使う。0件削除ならErrNotFound。
	Delete(ctx context.Context, orderID int64) error

	// 配送更新と完了を注文単位で直列化するためのロック付き取得。
	// トランザクション内でのみ呼ぶこと。
	FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error)

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)
	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
}
