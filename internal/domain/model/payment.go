package model

import "time"

// 1回分の支払い記録。リトライ・分割で1注文に複数行あり得る。
// payment_detailsはゲートウェイのレシートをそのままJSON textで持つ。
type Payment struct {
	ID             int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64         `gorm:"not null;index" json:"order_id"`
	PaymentMethod  PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus  string        `gorm:"type:varchar(20);not null;default:'COMPLETED'" json:"payment_status"`
	AmountPaid     int64         `gorm:"not null" json:"amount_paid"`
	TransactionID  string        `gorm:"type:varchar(255);not null;index" json:"transaction_id"`
	PaymentDetails string        `gorm:"type:text" json:"payment_details"`
	PaidAt         time.Time     `gorm:"not null" json:"paid_at"`
	CreatedAt      time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

const PaymentStatusCompleted = "COMPLETED"
