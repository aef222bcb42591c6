package validator

import (
	"errors"
	"strings"
	"unicode/utf8"

	"app/internal/usecase"
)

var (
	// 受取人名が空
	ErrRecipientNameRequired = errors.New("recipient_name is required")

	// 住所が空
	ErrAddressRequired = errors.New("address is required")

	// 連絡先が空か形式不正
	ErrContactNumberInvalid = errors.New("contact_number is invalid")
)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// チェックアウトの受取人情報を検証
func (v *checkoutValidator) ValidateRecipient(recipientName string, address string, contactNumber string) error {
	recipientName = strings.TrimSpace(recipientName)
	address = strings.TrimSpace(address)
	contactNumber = strings.TrimSpace(contactNumber)

	// 必須チェック
	if recipientName == "" || utf8.RuneCountInString(recipientName) > 255 {
		return ErrRecipientNameRequired
	}
	if address == "" {
		return ErrAddressRequired
	}
	if contactNumber == "" || !isPhoneLike(contactNumber) {
		return ErrContactNumberInvalid
	}

	return nil
}

// 電話番号らしいかの簡易チェック（数字・ハイフン・スペース・先頭+）
func isPhoneLike(s string) bool {
	if len(s) < 5 || len(s) > 30 {
		return false
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '-' || r == ' ' {
			continue
		}
		if r == '+' && i == 0 {
			continue
		}
		return false
	}
	return true
}
