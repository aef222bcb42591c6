package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutValidator_ValidInput(t *testing.T) {
	v := NewCheckoutValidator()

	err := v.ValidateRecipient("山田 太郎", "東京都千代田区1-1", "090-1234-5678")
	assert.NoError(t, err)
}

func TestCheckoutValidator_MissingName(t *testing.T) {
	v := NewCheckoutValidator()

	err := v.ValidateRecipient("   ", "東京都千代田区1-1", "090-1234-5678")
	assert.ErrorIs(t, err, ErrRecipientNameRequired)
}

func TestCheckoutValidator_MissingAddress(t *testing.T) {
	v := NewCheckoutValidator()

	err := v.ValidateRecipient("山田 太郎", "", "090-1234-5678")
	assert.ErrorIs(t, err, ErrAddressRequired)
}

func TestCheckoutValidator_ContactNumber(t *testing.T) {
	v := NewCheckoutValidator()

	// 国際表記はOK
	assert.NoError(t, v.ValidateRecipient("山田 太郎", "東京都", "+81 90 1234 5678"))

	// 文字混じり・短すぎはNG
	assert.ErrorIs(t, v.ValidateRecipient("山田 太郎", "東京都", "call-me"), ErrContactNumberInvalid)
	assert.ErrorIs(t, v.ValidateRecipient("山田 太郎", "東京都", "12"), ErrContactNumberInvalid)
}
