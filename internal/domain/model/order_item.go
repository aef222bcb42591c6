package model

import "time"

// 注文明細。title_snapshotはチェックアウト時点の商品タイトルを固定で持つ。
// 後から商品が編集・削除されても注文側は変わらない。
type OrderItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64     `gorm:"not null;index" json:"order_id"`
	ProductID     int64     `gorm:"not null;index" json:"product_id"`
	TitleSnapshot string    `gorm:"type:varchar(255);not null" json:"title_snapshot"`
	Variant       string    `gorm:"type:varchar(50)" json:"variant"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
