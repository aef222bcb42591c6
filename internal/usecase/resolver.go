package usecase

import (
	"context"
	"errors"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 参照先の商品が消えている（チェックアウトは全体を中止する）
var ErrProductGone = errors.New("product gone")

// スナップショット解決が読む最小の約束。
// トランザクション内のrepoをそのまま渡せる。
type ProductReader interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
}

// カート明細を注文スナップショットへ解決する。
// タイトルはこの時点の値で固定され、以後の商品編集の影響を受けない。
type SnapshotResolver struct{}

func NewSnapshotResolver() *SnapshotResolver {
	return &SnapshotResolver{}
}

func (s *SnapshotResolver) Resolve(ctx context.Context, products ProductReader, items []model.CartItem) ([]model.OrderItem, error) {
	out := make([]model.OrderItem, 0, len(items))

	for _, ci := range items {
		p, err := products.FindByID(ctx, ci.ProductID)
		if err == repo.ErrNotFound {
			// 1件でも欠けたら全体を失敗にする。部分注文は作らない。
			return nil, fmt.Errorf("product %d: %w", ci.ProductID, ErrProductGone)
		}
		if err != nil {
			return nil, err
		}
		if !p.IsActive {
			return nil, fmt.Errorf("product %d: %w", ci.ProductID, ErrProductGone)
		}

		out = append(out, model.OrderItem{
			ProductID:     ci.ProductID,
			TitleSnapshot: p.Title,
			Variant:       ci.Variant,
			Quantity:      ci.Quantity,
		})
	}

	return out, nil
}
