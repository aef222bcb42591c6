package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// idempotency_keyの一意制約はuser_idとの複合。
// 単独のunique indexに戻すと、別ユーザーが同じキーを再利用した時点で
// チェックアウトが弾かれてしまう。
func TestOrder_IdempotencyKeyUniquePerUser(t *testing.T) {
	typ := reflect.TypeOf(Order{})

	userID, ok := typ.FieldByName("UserID")
	assert.True(t, ok)
	key, ok := typ.FieldByName("IdempotencyKey")
	assert.True(t, ok)

	const idx = "uniqueIndex:idx_orders_user_idem"
	assert.True(t, strings.Contains(userID.Tag.Get("gorm"), idx), "gorm tag=%q", userID.Tag.Get("gorm"))
	assert.True(t, strings.Contains(key.Tag.Get("gorm"), idx), "gorm tag=%q", key.Tag.Get("gorm"))

	// キー単独のグローバル一意にはしない
	assert.False(t, strings.Contains(key.Tag.Get("gorm"), "uniqueIndex;"), "gorm tag=%q", key.Tag.Get("gorm"))
}
