package model

// 注文ステータスと明細ステータスは別カタログ。
// 番号帯は被るが意味が違うので、IDの型を分けて取り違えをコンパイル時に防ぐ。

type OrderStatusID int64

type ItemStatusID int64

// 注文レベルのステータスカタログ（1〜8、固定シード）。
const (
	OrderStatusPending          OrderStatusID = 1
	OrderStatusPreparing        OrderStatusID = 2
	OrderStatusReadyForPickup   OrderStatusID = 3
	OrderStatusReadyForDelivery OrderStatusID = 4
	OrderStatusInTransit        OrderStatusID = 5
	OrderStatusDelivered        OrderStatusID = 6
	OrderStatusCancelled        OrderStatusID = 7
	OrderStatusReadyForDropOff  OrderStatusID = 8
)

// 明細レベルのステータスカタログ（1〜7、固定シード）。
// 注文カタログと番号が揃っていない点に注意。
const (
	ItemStatusPending         ItemStatusID = 1
	ItemStatusProcessing      ItemStatusID = 2
	ItemStatusReadyForPickup  ItemStatusID = 3
	ItemStatusInTransit       ItemStatusID = 4
	ItemStatusDelivered       ItemStatusID = 5
	ItemStatusCancelled       ItemStatusID = 6
	ItemStatusReadyForDropOff ItemStatusID = 7
)

// 注文ステータスの参照行。過去注文が参照するため行は消さず is_active で退役させる。
type OrderStatus struct {
	ID          OrderStatusID `gorm:"primaryKey" json:"id"`
	Description string        `gorm:"type:varchar(50);not null" json:"description"`
	IsActive    bool          `gorm:"not null;default:true" json:"is_active"`
}

func (OrderStatus) TableName() string { return "order_statuses" }

// 明細ステータスの参照行。
type OrderItemStatus struct {
	ID          ItemStatusID `gorm:"primaryKey" json:"id"`
	Description string       `gorm:"type:varchar(50);not null" json:"description"`
	IsActive    bool         `gorm:"not null;default:true" json:"is_active"`
}

func (OrderItemStatus) TableName() string { return "order_item_statuses" }

// 明細の正規の進行順。遷移表はここが唯一の定義。
// Ready for PickupとReady for Drop offは並列の枝（同ランク）。
var itemTransitions = map[ItemStatusID][]ItemStatusID{
	ItemStatusPending:         {ItemStatusProcessing},
	ItemStatusProcessing:      {ItemStatusReadyForPickup, ItemStatusReadyForDropOff},
	ItemStatusReadyForPickup:  {ItemStatusInTransit},
	ItemStatusReadyForDropOff: {ItemStatusInTransit},
	ItemStatusInTransit:       {ItemStatusDelivered},
	ItemStatusDelivered:       {},
	ItemStatusCancelled:       {},
}

// 進行度。注文ステータスの導出（最小進行度）に使う全順序。
var itemProgressRank = map[ItemStatusID]int{
	ItemStatusPending:         0,
	ItemStatusProcessing:      1,
	ItemStatusReadyForPickup:  2,
	ItemStatusReadyForDropOff: 2,
	ItemStatusInTransit:       3,
	ItemStatusDelivered:       4,
}

// IsTerminalは終端ステータス（以後の遷移なし）かどうか。
func (s ItemStatusID) IsTerminal() bool {
	return s == ItemStatusDelivered || s == ItemStatusCancelled
}

// CanTransitionToは遷移表に基づく判定。
// Cancelledへは非終端からなら常に可。後戻りは不可。
func (s ItemStatusID) CanTransitionTo(next ItemStatusID) bool {
	if next == ItemStatusCancelled {
		return !s.IsTerminal()
	}
	for _, t := range itemTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// DeriveOrderStatusは明細ステータス集合から注文ステータスを導出する。
//   - 全明細Cancelled → Cancelled
//   - 非終端の明細が残る → Cancelled以外の明細のうち最小進行度のステータスに対応する注文ステータス
//   - 残り全部Delivered（1件以上） → Delivered
//
// 注文ステータスは独立に書き換えない。常にここの結果で上書きする。
func DeriveOrderStatus(items []OrderItem) OrderStatusID {
	if len(items) == 0 {
		return OrderStatusPending
	}

	floorRank := -1
	floorStatus := ItemStatusCancelled
	sawNonCancelled := false
	mixedBranch := false

	for _, it := range items {
		if it.ItemStatusID == ItemStatusCancelled {
			continue
		}
		sawNonCancelled = true

		r := itemProgressRank[it.ItemStatusID]
		if floorRank == -1 || r < floorRank {
			floorRank = r
			floorStatus = it.ItemStatusID
			mixedBranch = false
			continue
		}
		// 同ランクでpickup/drop-offが混在したら汎用のReady for Deliveryに倒す
		if r == floorRank && it.ItemStatusID != floorStatus {
			mixedBranch = true
		}
	}

	if !sawNonCancelled {
		return OrderStatusCancelled
	}

	switch floorStatus {
	case ItemStatusPending:
		return OrderStatusPending
	case ItemStatusProcessing:
		return OrderStatusPreparing
	case ItemStatusReadyForPickup:
		if mixedBranch {
			return OrderStatusReadyForDelivery
		}
		return OrderStatusReadyForPickup
	case ItemStatusReadyForDropOff:
		if mixedBranch {
			return OrderStatusReadyForDelivery
		}
		return OrderStatusReadyForDropOff
	case ItemStatusInTransit:
		return OrderStatusInTransit
	case ItemStatusDelivered:
		return OrderStatusDelivered
	}
	return OrderStatusPending
}

// 注文がPOD（配達証明）を受け付けられる状態か。
func (s OrderStatusID) DeliveryEligible() bool {
	return s == OrderStatusInTransit || s == OrderStatusDelivered
}
