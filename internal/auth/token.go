package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hitoshi/campman/internal/model"
)

// TokenManager はベアラートークンの発行と検証を提供する。
// HMAC-SHA256署名のJWTを使用する。
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager はTokenManagerを生成する。
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// Claims はトークンのペイロードを表す。
// 標準クレームに加えてユーザーIDを保持する。
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// Issue は指定ユーザーIDの署名付きトークンを発行する。
func (m *TokenManager) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify はトークン文字列を検証し、含まれるユーザーIDを返す。
// 署名不正・期限切れ・形式不正はすべてAuthenticationErrorになる。
func (m *TokenManager) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, model.NewInvalidTokenError()
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, model.NewInvalidTokenError()
	}

	return claims.UserID, nil
}
