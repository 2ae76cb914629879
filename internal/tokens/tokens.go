package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	IssuerName   = "pomodoro-backend"
	AudienceName = "pomodoro-app"
)

var (
	// ErrNoSigningSecret reports a misconfigured signer. It is a
	// configuration fault, never an authentication outcome.
	ErrNoSigningSecret = errors.New("signing secret is not configured")

	// ErrInvalidToken is the single outcome for every validation
	// failure; callers must not be able to tell why a token was
	// rejected.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the username both as the registered subject and as an
// explicit custom claim. Tokens where the two disagree are rejected.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Issuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (i *Issuer) IssueAccess(username string) (string, time.Time, error) {
	return sign(username, i.AccessSecret, i.AccessTTL, "")
}

func (i *Issuer) IssueRefresh(username string) (string, time.Time, error) {
	return sign(username, i.RefreshSecret, i.RefreshTTL, uuid.NewString())
}

func sign(username string, secret []byte, ttl time.Duration, jti string) (string, time.Time, error) {
	if len(secret) == 0 {
		return "", time.Time{}, ErrNoSigningSecret
	}

	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    IssuerName,
			Audience:  jwt.ClaimStrings{AudienceName},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        jti,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccess verifies an access token against the access secret.
func ParseAccess(tokenStr string, secret []byte) (*Claims, error) {
	return parse(tokenStr, secret)
}

// ParseRefresh verifies a refresh token against the refresh secret.
func ParseRefresh(tokenStr string, secret []byte) (*Claims, error) {
	return parse(tokenStr, secret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected sign method")
			}
			return secret, nil
		},
		jwt.WithIssuer(IssuerName),
		jwt.WithAudience(AudienceName),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject != claims.Username {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
