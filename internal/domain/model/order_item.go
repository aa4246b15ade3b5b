package model

import "time"

// 注文明細。price_at_purchaseは購入時点のスナップショットで、
// 以後Itemカタログの価格を読み直さない。
// shop_idは店舗別クエリ用の非正規化。1注文に複数店舗の明細が混在できる。
type OrderItem struct {
	ID              int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64        `gorm:"not null;index" json:"order_id"`
	ItemID          int64        `gorm:"not null;index" json:"item_id"`
	ShopID          int64        `gorm:"not null;index" json:"shop_id"`
	Quantity        int64        `gorm:"not null" json:"quantity"`
	PriceAtPurchase int64        `gorm:"not null" json:"price_at_purchase"`
	ItemStatusID    ItemStatusID `gorm:"not null;index" json:"item_status_id"`
	CreatedAt       time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (OrderItem) TableName() string { return "order_items" }
