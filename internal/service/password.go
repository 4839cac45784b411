// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 以 bcrypt 預設成本雜湊明文密碼
// 回傳字串可直接存入 users.password_hash 欄位
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對既有雜湊與登入時提交的明文密碼
// 不相符時回傳 bcrypt 的錯誤，呼叫端不應將其內容透露給客戶端
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
