package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid   = errors.New("token is invalid or expired")
	ErrTokenWrongType = errors.New("token has wrong type")
)

// GenerateToken 签发指定类型的 Token
func GenerateToken(userID uint64, role string, tokenType string) (string, error) {
	ttl := accessTokenTTL
	if tokenType == TokenTypeRefresh {
		ttl = refreshTokenTTL
	}
	now := time.Now()

	claims := &UserClaims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token failed: %w", err)
	}

	return tokenString, nil
}

// GenerateTokenPair 同时签发 access 与 refresh
func GenerateTokenPair(userID uint64, role string) (access string, refresh string, err error) {
	if access, err = GenerateToken(userID, role, TokenTypeAccess); err != nil {
		return "", "", err
	}
	if refresh, err = GenerateToken(userID, role, TokenTypeRefresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ValidateToken 验证 Token 字符串并解析出 Claims，同时校验 Token 类型
func ValidateToken(tokenString string, tokenType string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	}, jwt.WithIssuer(jwtIssuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.TokenType != tokenType {
		return nil, ErrTokenWrongType
	}

	return claims, nil
}
