package model

import "time"

type CompletionStatus string

const (
	CompletionStatusCompleted CompletionStatus = "COMPLETED"
)

// 完了した注文のアーカイブ。追記専用で、作成後は変更しない。
// order_idは昇格元の注文ID。shipping_statusは昇格時点の値を引き継ぐ。
type History struct {
	ID               int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64            `gorm:"not null;uniqueIndex" json:"order_id"`
	UserID           int64            `gorm:"not null;index" json:"user_id"`
	RecipientName    string           `gorm:"type:varchar(255);not null" json:"recipient_name"`
	Address          string           `gorm:"type:text;not null" json:"address"`
	ContactNumber    string           `gorm:"type:varchar(50);not null" json:"contact_number"`
	AttachmentRef    string           `gorm:"type:varchar(255)" json:"attachment_ref"`
	ShippingStatus   ShippingStatus   `gorm:"type:varchar(20);not null" json:"shipping_status"`
	CompletionStatus CompletionStatus `gorm:"type:varchar(20);not null" json:"completion_status"`
	CompletedAt      time.Time        `gorm:"not null" json:"completed_at"`
	CreatedAt        time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
}

// アーカイブ側の明細。注文明細のスナップショットをそのまま写す。
type HistoryItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HistoryID     int64     `gorm:"not null;index" json:"history_id"`
	ProductID     int64     `gorm:"not null;index" json:"product_id"`
	TitleSnapshot string    `gorm:"type:varchar(255);not null" json:"title_snapshot"`
	Variant       string    `gorm:"type:varchar(50)" json:"variant"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
