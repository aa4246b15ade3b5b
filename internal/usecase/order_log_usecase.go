package usecase

import (
	"context"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
)

type OrderLogUsecase struct {
	orders repo.OrderRepository
	logs   repo.OrderLogRepository
}

func NewOrderLogUsecase(orders repo.OrderRepository, logs repo.OrderLogRepository) *OrderLogUsecase {
	return &OrderLogUsecase{orders: orders, logs: logs}
}

type OrderLogListOutput struct {
	Total int64            `json:"total"`
	Logs  []model.OrderLog `json:"logs"`
}

// 監査ログの閲覧。created_atの古い順。読み取りだけなのでtxは張らない。
func (u *OrderLogUsecase) List(ctx context.Context, orderID int64, filter repo.OrderLogFilter) (OrderLogListOutput, error) {
	if orderID <= 0 {
		return OrderLogListOutput{}, errValidation("invalid id")
	}

	if _, err := u.orders.FindByID(ctx, orderID); err != nil {
		if err == repo.ErrNotFound {
			return OrderLogListOutput{}, errNotFound("order not found")
		}
		return OrderLogListOutput{}, dbError(err)
	}

	logs, total, err := u.logs.ListByOrderID(ctx, orderID, filter)
	if err != nil {
		return OrderLogListOutput{}, dbError(err)
	}
	return OrderLogListOutput{Total: total, Logs: logs}, nil
}
