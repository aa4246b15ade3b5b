package repository

import (
	"context"
	"time"

	"agrimart/internal/domain/model"
)

type OrderLogFilter struct {
	Event  *model.LogEvent
	UserID *int64
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// 監査ログ。Createが唯一の書き込みで、更新・削除のメソッドは存在しない。
type OrderLogRepository interface {
	Create(ctx context.Context, log model.OrderLog) error

	// created_at昇順（同時刻はid昇順）で返す。
	ListByOrderID(ctx context.Context, orderID int64, filter OrderLogFilter) ([]model.OrderLog, int64, error)
}
