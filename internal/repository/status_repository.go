package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

// ステータスカタログの参照。行は不変でデプロイ時にシードされる。
// is_active=falseの行も解決はできる（過去注文のため）。
type StatusRepository interface {
	FindOrderStatus(ctx context.Context, id model.OrderStatusID) (model.OrderStatus, error)
	FindItemStatus(ctx context.Context, id model.ItemStatusID) (model.OrderItemStatus, error)
	ListOrderStatuses(ctx context.Context) ([]model.OrderStatus, error)
	ListItemStatuses(ctx context.Context) ([]model.OrderItemStatus, error)
}
