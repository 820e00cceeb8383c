package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// 默认值，启动时由 Configure 覆盖
var (
	jwtSecret       = []byte("novaaff-dev-secret")
	jwtIssuer       = "novaaff"
	accessTokenTTL  = time.Hour
	refreshTokenTTL = time.Hour * 24
)

// UserClaims Token 中携带的账号信息
type UserClaims struct {
	UserID    uint64 `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Configure 设置签名密钥与有效期
func Configure(secret, issuer string, accessTTL, refreshTTL time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if issuer != "" {
		jwtIssuer = issuer
	}
	if accessTTL > 0 {
		accessTokenTTL = accessTTL
	}
	if refreshTTL > 0 {
		refreshTokenTTL = refreshTTL
	}
}
