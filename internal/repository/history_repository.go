package repository

import (
	"context"

	"app/internal/domain/model"
)

// アーカイブは追記専用。更新・削除のAPIは持たない。
type HistoryRepository interface {
	Create(ctx context.Context, h model.History) (int64, error)
	CreateItemsBulk(ctx context.Context, historyID int64, items []model.HistoryItem) error
	ListAll(ctx context.Context, page int, limit int) ([]model.History, int64, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.History, int64, error)
	ListItemsByHistoryID(ctx context.Context, historyID int64) ([]model.HistoryItem, error)
}
