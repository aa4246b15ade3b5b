package model

import "time"

// アグリベット（販売事業者）。1事業者が複数店舗を持てる。
type Agrivet struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	OwnerUserID int64     `gorm:"not null;index" json:"owner_user_id"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 店舗。チェックアウト時にis_activeを検証する。
type Shop struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AgrivetID int64     `gorm:"not null;index" json:"agrivet_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
