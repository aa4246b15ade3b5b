package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error)

	// COMPLETEDな支払い額の合計。COD配達確認などの照合に使う。
	SumCompletedByOrderID(ctx context.Context, orderID int64) (int64, error)
}
