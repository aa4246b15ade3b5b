package repository

import (
	"context"

	"agrimart/internal/domain/model"

	"gorm.io/gorm"
)

type ProofOfDeliveryGormRepository struct {
	db *gorm.DB
}

func NewProofOfDeliveryGormRepository(db *gorm.DB) *ProofOfDeliveryGormRepository {
	return &ProofOfDeliveryGormRepository{db: db}
}

func (r *ProofOfDeliveryGormRepository) Create(ctx context.Context, proof model.ProofOfDelivery) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&proof).Error; err != nil {
		return 0, err
	}
	return proof.ID, nil
}

func (r *ProofOfDeliveryGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.ProofOfDelivery, error) {
	var out []model.ProofOfDelivery
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
