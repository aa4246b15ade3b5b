package model

import "time"

// 支払い方法。
type PaymentMethod string

const (
	PaymentMethodCOD   PaymentMethod = "COD"
	PaymentMethodGcash PaymentMethod = "GCASH"
	PaymentMethodCard  PaymentMethod = "CARD"
)

// 注文全体の支払い状況。
type PaymentState string

const (
	PaymentStateUnpaid  PaymentState = "UNPAID"
	PaymentStatePartial PaymentState = "PARTIAL"
	PaymentStatePaid    PaymentState = "PAID"
)

// 注文の商業条件。金額はセンタボ単位のint64。
// total_amount = subtotal + shipping_fee は作成時に検証する不変条件。
// Pendingを抜けた後はpayment_status以外書き換えない。
type OrderDetail struct {
	ID               int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderCode        string        `gorm:"type:varchar(64);not null;uniqueIndex" json:"order_code"`
	Subtotal         int64         `gorm:"not null" json:"subtotal"`
	ShippingFee      int64         `gorm:"not null" json:"shipping_fee"`
	TotalAmount      int64         `gorm:"not null" json:"total_amount"`
	ShippingAddress  string        `gorm:"type:text;not null" json:"shipping_address"`
	DropLocationLat  float64       `json:"drop_location_lat"`
	DropLocationLong float64       `json:"drop_location_long"`
	OrderInstruction string        `gorm:"type:text" json:"order_instruction"`
	PaymentMethod    PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus    PaymentState  `gorm:"type:varchar(20);not null;default:'UNPAID'" json:"payment_status"`
	CreatedAt        time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (OrderDetail) TableName() string { return "order_details" }

// ValidPaymentMethodは入力の支払い方法チェック。
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodGcash, PaymentMethodCard:
		return true
	}
	return false
}
