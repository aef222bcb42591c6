package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// 無ければ作る（1ユーザー1カート）
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)

	// チェックアウト用。カート行をFOR UPDATEでロックして
	// 「読み取り→クリア」を同一トランザクション内で直列化する。
	FindByUserIDForUpdate(ctx context.Context, userID int64) (model.Cart, error)

	// 明細を全削除する。カートのレコード自体は消さない。
	Clear(ctx context.Context, cartID int64) error
}
