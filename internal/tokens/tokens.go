package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the payload of an HS256 access token. Subject is the user
// id; Superuser and Active are trusted by the auth middleware without a DB
// lookup, so deactivation takes effect once outstanding tokens expire.
type AccessClaims struct {
	Superuser bool `json:"su"`
	Active    bool `json:"act"`
	jwt.RegisteredClaims
}

func NewAccessToken(userID string, superuser, active bool, expiresAt time.Time, secret []byte) (string, error) {
	claims := AccessClaims{
		Superuser: superuser,
		Active:    active,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func AccessClaimsFromToken(token string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
