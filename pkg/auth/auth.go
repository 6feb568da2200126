package auth

import (
	"context"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleLibrarian = "librarian"
	RoleMember    = "member"

	tokenTTL = 24 * time.Hour
)

// JWTKey signs and verifies access tokens. Override via JWT_KEY in production.
var JWTKey = jwtKey()

func jwtKey() []byte {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("library-service-insecure-dev-key")
}

type Claims struct {
	Profile struct {
		UserID   int    `json:"userId"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewToken issues a signed HS256 token for the given identity.
// It returns the token string and the unix expiration time.
func NewToken(userID int, email, role string) (string, int64, error) {
	expirationTime := time.Now().Add(tokenTTL)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.Profile.UserID = userID
	claims.Profile.Username = email
	claims.Profile.Role = role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JWTKey)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expirationTime.Unix(), nil
}

// ParseToken verifies the signature and expiry of an access token.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JWTKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Principal is the authenticated identity every operation trusts.
type Principal struct {
	UserID int
	Email  string
	Role   string
}

func (p Principal) IsLibrarian() bool {
	return p.Role == RoleLibrarian
}

type ctxKey int

const principalKey ctxKey = iota + 1

func SetAuthContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok {
		return Principal{}, errors.New("no principal in context")
	}
	return p, nil
}
