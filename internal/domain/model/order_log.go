package model

import "time"

// 監査ログのイベント種別。
type LogEvent string

const (
	LogEventOrderPlaced     LogEvent = "order_placed"
	LogEventStatusChanged   LogEvent = "status_changed"
	LogEventOrderCancelled  LogEvent = "order_cancelled"
	LogEventPaymentReceived LogEvent = "payment_received"
	LogEventProofRecorded   LogEvent = "proof_of_delivery"
	LogEventNoteAdded       LogEvent = "note_added"
)

// 注文の監査ログ。追記専用で、更新・削除は一切しない。
// 訂正は旧行をmetadataで参照する新行として追記する。
// ステータス遷移1回につき必ず1行。from/toは遷移以外のイベントではnull。
type OrderLog struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64     `gorm:"not null;index" json:"order_id"`
	OrderItemID      *int64    `gorm:"index" json:"order_item_id,omitempty"`
	Event            LogEvent  `gorm:"type:varchar(50);not null;index" json:"event"`
	FromStatus       *int64    `json:"from_status,omitempty"`
	ToStatus         *int64    `json:"to_status,omitempty"`
	UserID           *int64    `gorm:"index" json:"user_id,omitempty"`
	Amount           *int64    `json:"amount,omitempty"`
	Currency         string    `gorm:"type:varchar(8)" json:"currency,omitempty"`
	PaymentReference string    `gorm:"type:varchar(255)" json:"payment_reference,omitempty"`
	PaymentMethod    string    `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`
	MetadataJSON     string    `gorm:"column:metadata;type:text" json:"metadata,omitempty"`
	IPAddress        string    `gorm:"type:varchar(64)" json:"ip_address,omitempty"`
	UserAgent        string    `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt        time.Time `gorm:"not null;index;autoCreateTime" json:"created_at"`
}

func (OrderLog) TableName() string { return "order_logs" }
