package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

type OrderDetailRepository interface {
	Create(ctx context.Context, detail model.OrderDetail) (int64, error)
	FindByID(ctx context.Context, detailID int64) (model.OrderDetail, error)

	// 支払い状況だけは作成後も更新できる（商業条件は不変）。
	UpdatePaymentStatus(ctx context.Context, detailID int64, status model.PaymentState) error
}
