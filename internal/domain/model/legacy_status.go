package model

import "strings"

// 旧スキーマは文字列ステータスだった。整数カタログIDへの固定対応表。
// 対応のない文字列はPending(1)に落とす（失敗させない。安全側のデフォルト）。

var legacyItemStatus = map[string]ItemStatusID{
	"pending":            ItemStatusPending,
	"ordered":            ItemStatusPending,
	"placed":             ItemStatusPending,
	"processing":         ItemStatusProcessing,
	"preparing":          ItemStatusProcessing,
	"ready for pickup":   ItemStatusReadyForPickup,
	"ready_for_pickup":   ItemStatusReadyForPickup,
	"shipped":            ItemStatusInTransit,
	"in transit":         ItemStatusInTransit,
	"in-transit":         ItemStatusInTransit,
	"delivered":          ItemStatusDelivered,
	"completed":          ItemStatusDelivered,
	"cancelled":          ItemStatusCancelled,
	"canceled":           ItemStatusCancelled,
	"ready for drop off": ItemStatusReadyForDropOff,
	"ready_for_dropoff":  ItemStatusReadyForDropOff,
}

var legacyOrderStatus = map[string]OrderStatusID{
	"pending":            OrderStatusPending,
	"ordered":            OrderStatusPending,
	"placed":             OrderStatusPending,
	"preparing":          OrderStatusPreparing,
	"processing":         OrderStatusPreparing,
	"ready for pickup":   OrderStatusReadyForPickup,
	"ready_for_pickup":   OrderStatusReadyForPickup,
	"ready for delivery": OrderStatusReadyForDelivery,
	"shipped":            OrderStatusInTransit,
	"in transit":         OrderStatusInTransit,
	"in-transit":         OrderStatusInTransit,
	"delivered":          OrderStatusDelivered,
	"completed":          OrderStatusDelivered,
	"cancelled":          OrderStatusCancelled,
	"canceled":           OrderStatusCancelled,
	"ready for drop off": OrderStatusReadyForDropOff,
	"ready_for_dropoff":  OrderStatusReadyForDropOff,
}

// LegacyItemStatusIDは旧文字列を明細ステータスIDへ変換する。
func LegacyItemStatusID(s string) ItemStatusID {
	if id, ok := legacyItemStatus[normalizeLegacy(s)]; ok {
		return id
	}
	return ItemStatusPending
}

// LegacyOrderStatusIDは旧文字列を注文ステータスIDへ変換する。
func LegacyOrderStatusID(s string) OrderStatusID {
	if id, ok := legacyOrderStatus[normalizeLegacy(s)]; ok {
		return id
	}
	return OrderStatusPending
}

func normalizeLegacy(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
