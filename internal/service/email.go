// File: internal/service/email.go
package service

import (
	"errors"
	"net/mail"
	"strings"
)

// ErrInvalidEmail 表示 email 格式不合法
var ErrInvalidEmail = errors.New("invalid email format")

// NormalizeEmail 驗證並正規化 email：網域轉小寫，local part 保留原大小寫
// 僅接受純位址形式，拒絕 "Alice <alice@example.com>" 這類帶名稱或註解的寫法
func NormalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return "", ErrInvalidEmail
	}
	local, domain := addr.Address[:at], addr.Address[at+1:]
	return local + "@" + strings.ToLower(domain), nil
}
