package jwt

import (
	"time"

	jwtx "github.com/golang-jwt/jwt/v4"
)

// Manager handles JWT creation and verification using a secret key and token durations.
type Manager struct {
	secretKey       string
	tokenDuration   time.Duration
	refreshDuration time.Duration
}

// NewManager creates a new JWT Manager with the given secret key and token durations.
func NewManager(secretKey string, tokenDuration, refreshDuration time.Duration) *Manager {
	return &Manager{
		secretKey:       secretKey,
		tokenDuration:   tokenDuration,
		refreshDuration: refreshDuration,
	}
}

// Generate creates a signed access token string using the provided parameters.
func (m *Manager) Generate(params CreateJwtParams) (string, error) {
	return m.generate(params, m.tokenDuration)
}

// GenerateRefresh creates a signed refresh token string using the provided parameters.
func (m *Manager) GenerateRefresh(params CreateJwtParams) (string, error) {
	return m.generate(params, m.refreshDuration)
}

func (m *Manager) generate(params CreateJwtParams, duration time.Duration) (string, error) {
	claims := &Claims{
		UserID:   params.UserID,
		Email:    params.Email,
		Username: params.Username,
		RegisteredClaims: jwtx.RegisteredClaims{
			ExpiresAt: jwtx.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwtx.NewNumericDate(time.Now()),
		},
	}
	token := jwtx.NewWithClaims(jwtx.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Verify parses and validates a JWT token string, returning the claims if valid.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwtx.ParseWithClaims(tokenStr, &Claims{}, func(token *jwtx.Token) (interface{}, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwtx.ErrTokenInvalidClaims
	}
	return claims, nil
}
