package repository

import (
	"context"
	"errors"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"

	"gorm.io/gorm"
)

type OrderDetailGormRepository struct {
	db *gorm.DB
}

func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

func (r *OrderDetailGormRepository) Create(ctx context.Context, detail model.OrderDetail) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&detail).Error; err != nil {
		return 0, err
	}
	return detail.ID, nil
}

func (r *OrderDetailGormRepository) FindByID(ctx context.Context, detailID int64) (model.OrderDetail, error) {
	var d model.OrderDetail
	err := r.db.WithContext(ctx).Where("id = ?", detailID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderDetail{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderDetail{}, err
	}
	return d, nil
}

func (r *OrderDetailGormRepository) UpdatePaymentStatus(ctx context.Context, detailID int64, status model.PaymentState) error {
	res := r.db.WithContext(ctx).Model(&model.OrderDetail{}).
		Where("id = ?", detailID).
		Update("payment_status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
