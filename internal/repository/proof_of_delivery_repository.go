package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

type ProofOfDeliveryRepository interface {
	Create(ctx context.Context, proof model.ProofOfDelivery) (int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.ProofOfDelivery, error)
}
