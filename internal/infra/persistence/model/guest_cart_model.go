package model

import (
	"time"
)

// GuestCartItemModel is the GORM-specific struct for the 'guest_cart_items'
// table. Each row is one line of one client's guest cart; Position keeps
// insertion order stable across reloads. The product snapshot and the
// customizations are stored as opaque JSON, matching how the engine treats
// them.
type GuestCartItemModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	ClientID           string `gorm:"type:varchar(64);not null;index"`
	Position           int    `gorm:"not null"`
	ProductJSON        string `gorm:"type:text;not null"`
	Quantity           int    `gorm:"not null"`
	CustomizationsJSON string `gorm:"type:text;not null"`
	AddedAt            time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestCartItemModel) TableName() string {
	return "guest_cart_items"
}
