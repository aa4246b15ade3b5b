package repository

import (
	"context"

	"agrimart/internal/domain/model"
)

// 店舗・商品カタログの参照（チェックアウト時の検証用）。
type CatalogRepository interface {
	FindShop(ctx context.Context, shopID int64) (model.Shop, error)
	FindItem(ctx context.Context, itemID int64) (model.Item, error)
}
