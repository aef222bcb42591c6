package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type HistoryGormRepository struct {
	db *gorm.DB
}

func NewHistoryGormRepository(db *gorm.DB) *HistoryGormRepository {
	return &HistoryGormRepository{db: db}
}

func (r *HistoryGormRepository) Create(ctx context.Context, h model.History) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&h).Error; err != nil {
		return 0, err
	}
	return h.ID, nil
}

func (r *HistoryGormRepository) CreateItemsBulk(ctx context.Context, historyID int64, items []model.HistoryItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].HistoryID = historyID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *HistoryGormRepository) ListAll(ctx context.Context, page int, limit int) ([]model.History, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.History{}).Count(&total).Error; err != nil {
		return []model.History{}, 0, err
	}

	var items []model.History
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return []model.History{}, 0, err
	}

	return items, total, nil
}

func (r *HistoryGormRepository) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.History, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.History{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return []model.History{}, 0, err
	}

	var items []model.History
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return []model.History{}, 0, err
	}

	return items, total, nil
}

func (r *HistoryGormRepository) ListItemsByHistoryID(ctx context.Context, historyID int64) ([]model.HistoryItem, error) {
	var items []model.HistoryItem
	if err := r.db.WithContext(ctx).
		Where("history_id = ?", historyID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.HistoryItem{}, err
	}
	return items, nil
}
