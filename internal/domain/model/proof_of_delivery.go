package model

import "time"

// POD行の状態。
type ProofStatus string

const (
	ProofStatusSubmitted ProofStatus = "SUBMITTED"
	ProofStatusVerified  ProofStatus = "VERIFIED"
	ProofStatusRejected  ProofStatus = "REJECTED"
)

// 配達証明。配達試行ごとに1行（再配達で複数行になり得る）。
// imagesはURLのJSON配列をtextで持つ（画像本体の保管は外部）。
type ProofOfDelivery struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64       `gorm:"not null;index" json:"order_id"`
	Latitude   float64     `gorm:"not null" json:"latitude"`
	Longitude  float64     `gorm:"not null" json:"longitude"`
	ImagesJSON string      `gorm:"column:images;type:text" json:"images"`
	Remarks    string      `gorm:"type:text" json:"remarks"`
	Status     ProofStatus `gorm:"type:varchar(20);not null;default:'SUBMITTED'" json:"status"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ProofOfDelivery) TableName() string { return "proof_of_deliveries" }
