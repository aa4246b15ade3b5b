package repository

import (
	"context"

	"agrimart/internal/domain/model"

	"gorm.io/gorm"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, payment model.Payment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return 0, err
	}
	return payment.ID, nil
}

func (r *PaymentGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	var out []model.Payment
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentGormRepository) SumCompletedByOrderID(ctx context.Context, orderID int64) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("order_id = ? AND payment_status = ?", orderID, model.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
