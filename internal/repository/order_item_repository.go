package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// id昇順＋FOR UPDATE。複数明細を触る操作は必ずこの順でロックを取り、
	// 同一注文への並行遷移とのデッドロックを避ける。
	ListByOrderIDForUpdate(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	UpdateStatus(ctx context.Context, itemID int64, status model.ItemStatusID) error
}
