package repository

import (
	"context"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"

	"gorm.io/gorm"
)

// 追記専用。UpdateやDeleteは実装しない。
type OrderLogGormRepository struct {
	db *gorm.DB
}

func NewOrderLogGormRepository(db *gorm.DB) *OrderLogGormRepository {
	return &OrderLogGormRepository{db: db}
}

func (r *OrderLogGormRepository) Create(ctx context.Context, log model.OrderLog) error {
	if err := r.db.WithContext(ctx).Create(&log).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderLogGormRepository) ListByOrderID(ctx context.Context, orderID int64, filter repo.OrderLogFilter) ([]model.OrderLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.OrderLog{}).Where("order_id = ?", orderID)

	if filter.Event != nil {
		q = q.Where("event = ?", *filter.Event)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	// 古い順（同時刻はid昇順）
	var logs []model.OrderLog
	err := q.Order("created_at asc, id asc").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
