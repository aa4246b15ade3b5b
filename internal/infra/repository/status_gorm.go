package repository

import (
	"context"
	"errors"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"

	"gorm.io/gorm"
)

type StatusGormRepository struct {
	db *gorm.DB
}

func NewStatusGormRepository(db *gorm.DB) *StatusGormRepository {
	return &StatusGormRepository{db: db}
}

func (r *StatusGormRepository) FindOrderStatus(ctx context.Context, id model.OrderStatusID) (model.OrderStatus, error) {
	var s model.OrderStatus
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderStatus{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderStatus{}, err
	}
	return s, nil
}

func (r *StatusGormRepository) FindItemStatus(ctx context.Context, id model.ItemStatusID) (model.OrderItemStatus, error) {
	var s model.OrderItemStatus
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderItemStatus{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderItemStatus{}, err
	}
	return s, nil
}

func (r *StatusGormRepository) ListOrderStatuses(ctx context.Context) ([]model.OrderStatus, error) {
	var out []model.OrderStatus
	if err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StatusGormRepository) ListItemStatuses(ctx context.Context) ([]model.OrderItemStatus, error) {
	var out []model.OrderItemStatus
	if err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
