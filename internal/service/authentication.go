// File: internal/service/authentication.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"recipe-box/internal/cache"
	"recipe-box/internal/model"

	"github.com/redis/go-redis/v9"
)

// tokenKeyPrefix 為 Redis 中存放 session token 的 key 前綴
const tokenKeyPrefix = "auth:token:"

// TokenData 定義隨 token 存入 Redis 的帳號資訊
type TokenData struct {
	UserID      int  `json:"user_id"`
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
}

// 測試可覆寫下列變數
var (
	randRead      = rand.Read
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// AuthenticateUser 根據使用者結構和明文密碼驗證，成功回傳使用者
// 空密碼與停用帳號一律失敗
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if password == "" {
		return nil, errors.New("invalid password")
	}
	if !user.IsActive {
		return nil, errors.New("user is inactive")
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid password")
	}
	return &user, nil
}

// IssueAccessToken 產生不透明 token 並將帳號資訊寫入 Redis
// token 不設過期，對應的撤銷機制由產品需求另行決定
func IssueAccessToken(ctx context.Context, rdb cache.Cache, user model.User) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("IssueAccessToken: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(TokenData{
		UserID:      user.ID,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	})
	if err != nil {
		return "", fmt.Errorf("IssueAccessToken: %w", err)
	}

	if err := rdb.Set(ctx, tokenKeyPrefix+token, data, 0).Err(); err != nil {
		return "", fmt.Errorf("IssueAccessToken: %w", err)
	}
	return token, nil
}

// ValidateAccessToken 以 token 取回帳號資訊，token 不存在即視為未認證
func ValidateAccessToken(ctx context.Context, rdb cache.Cache, token string) (*TokenData, error) {
	raw, err := rdb.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("invalid token")
		}
		return nil, fmt.Errorf("ValidateAccessToken: %w", err)
	}

	var data TokenData
	if err := jsonUnmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("ValidateAccessToken: %w", err)
	}
	return &data, nil
}
