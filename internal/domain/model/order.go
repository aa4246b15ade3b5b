package model

import "time"

// 注文の集約ルート。order_status_idは明細から導出した値のスナップショット。
// 書き換えるのは遷移エンジンだけ（常にDeriveOrderStatusの結果で上書き）。
type Order struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64         `gorm:"not null;index" json:"user_id"`
	OrderDetailID int64         `gorm:"not null;uniqueIndex" json:"order_detail_id"`
	OrderStatusID OrderStatusID `gorm:"not null;index" json:"order_status_id"`
	OrderedAt     time.Time     `gorm:"not null;autoCreateTime" json:"ordered_at"`
	UpdatedAt     time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
