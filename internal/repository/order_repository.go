package repository

import (
	"context"
	"errors"
	"time"

	"agrimart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type OrderListFilter struct {
	Page     int
	Limit    int
	StatusID *model.OrderStatusID
	UserID   *int64
	From     *time.Time
	To       *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// SELECT ... FOR UPDATEで注文行をロックして取得する。
	// 遷移系の操作は必ずこちらを使う。
	FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error)

	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// 導出済みステータスでの上書き専用。
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatusID) error

	// 管理画面の注文一覧
	ListAdmin(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
}
