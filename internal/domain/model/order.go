package model

import "time"

type ShippingStatus string

const (
	ShippingStatusPending   ShippingStatus = "PENDING"
	ShippingStatusShipped   ShippingStatus = "SHIPPED"
	ShippingStatusDelivered ShippingStatus = "DELIVERED"
)

// チェックアウト済みの注文。
// 受取人情報と明細は作成後に変更しない。変更できるのは配送ステータスのみ。
type Order struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64          `gorm:"not null;index;uniqueIndex:idx_orders_user_idem" json:"user_id"`
	RecipientName  string         `gorm:"type:varchar(255);not null" json:"recipient_name"`
	Address        string         `gorm:"type:text;not null" json:"address"`
	ContactNumber  string         `gorm:"type:varchar(50);not null" json:"contact_number"`
	AttachmentRef  string         `gorm:"type:varchar(255)" json:"attachment_ref"`
	ShippingStatus ShippingStatus `gorm:"type:varchar(20);not null;index" json:"shipping_status"`
	// キーはユーザー単位で一意。別ユーザーが同じキーを使っても衝突しない。
	IdempotencyKey string `gorm:"type:varchar(255);not null;uniqueIndex:idx_orders_user_idem" json:"-"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
