package db

import (
	"agrimart/internal/domain/model"

	"gorm.io/gorm"
)

// 旧スキーマはordersとorder_itemsに文字列ステータス列を持っていた。
// 列が残っているDBに対してだけ、固定対応表で整数IDへ移行する。
// 未知の文字列はPending(1)に落とす（model.LegacyItemStatusID参照）。
func MigrateLegacyStatuses(gormDB *gorm.DB) error {
	m := gormDB.Migrator()

	if m.HasColumn(&model.OrderItem{}, "legacy_status") {
		var rows []struct {
			ID           int64
			LegacyStatus string
		}
		err := gormDB.Model(&model.OrderItem{}).
			Where("legacy_status IS NOT NULL AND legacy_status <> ''").
			Select("id", "legacy_status").
			Find(&rows).Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			err := gormDB.Model(&model.OrderItem{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"item_status_id": model.LegacyItemStatusID(row.LegacyStatus),
					"legacy_status":  "",
				}).Error
			if err != nil {
				return err
			}
		}
	}

	if m.HasColumn(&model.Order{}, "legacy_status") {
		var rows []struct {
			ID           int64
			LegacyStatus string
		}
		err := gormDB.Model(&model.Order{}).
			Where("legacy_status IS NOT NULL AND legacy_status <> ''").
			Select("id", "legacy_status").
			Find(&rows).Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			err := gormDB.Model(&model.Order{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"order_status_id": model.LegacyOrderStatusID(row.LegacyStatus),
					"legacy_status":   "",
				}).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}
