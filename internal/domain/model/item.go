package model

import "time"

// 商品カタログ。priceは現在価格で、注文明細には使わず
// チェックアウト時にprice_at_purchaseへスナップショットする。
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID      int64     `gorm:"not null;index" json:"shop_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
