package db

import (
	"agrimart/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ステータスカタログの固定シード。番号は注文と明細で独立していて揃っていない。
// デプロイ間で同一でなければならないので、ここ以外で行を足さない。

var orderStatusSeed = []model.OrderStatus{
	{ID: model.OrderStatusPending, Description: "Pending", IsActive: true},
	{ID: model.OrderStatusPreparing, Description: "Preparing", IsActive: true},
	{ID: model.OrderStatusReadyForPickup, Description: "Ready for Pickup", IsActive: true},
	{ID: model.OrderStatusReadyForDelivery, Description: "Ready for Delivery", IsActive: true},
	{ID: model.OrderStatusInTransit, Description: "In-Transit", IsActive: true},
	{ID: model.OrderStatusDelivered, Description: "Delivered", IsActive: true},
	{ID: model.OrderStatusCancelled, Description: "Cancelled", IsActive: true},
	{ID: model.OrderStatusReadyForDropOff, Description: "Ready for Drop off", IsActive: true},
}

var itemStatusSeed = []model.OrderItemStatus{
	{ID: model.ItemStatusPending, Description: "Pending", IsActive: true},
	{ID: model.ItemStatusProcessing, Description: "Processing", IsActive: true},
	{ID: model.ItemStatusReadyForPickup, Description: "Ready for Pickup", IsActive: true},
	{ID: model.ItemStatusInTransit, Description: "In-Transit", IsActive: true},
	{ID: model.ItemStatusDelivered, Description: "Delivered", IsActive: true},
	{ID: model.ItemStatusCancelled, Description: "Cancelled", IsActive: true},
	{ID: model.ItemStatusReadyForDropOff, Description: "Ready for Drop off", IsActive: true},
}

// SeedStatusCatalogsはカタログ行を投入する。既存行は触らない（冪等）。
func SeedStatusCatalogs(gormDB *gorm.DB) error {
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&orderStatusSeed).Error; err != nil {
		return err
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&itemStatusSeed).Error; err != nil {
		return err
	}
	return nil
}
