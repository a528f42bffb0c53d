package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Config struct {
	Secret string        `envconfig:"JWT_SECRET"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

// Claims is issued by the identity provider after sign-in.
type Claims struct {
	Profile struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type User struct {
	ID   uuid.UUID
	Role string
}

type ctxKey int

const userKey ctxKey = iota + 1

var (
	ErrNoUser       = errors.New("no user in context")
	ErrInvalidToken = errors.New("invalid token")
)

func SetAuthContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func GetUser(ctx context.Context) (User, error) {
	u, ok := ctx.Value(userKey).(User)
	if !ok {
		return User{}, ErrNoUser
	}
	return u, nil
}

func NewToken(cfg Config, userID uuid.UUID, role string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}
	claims.Profile.UserID = userID.String()
	claims.Profile.Role = role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func ParseToken(cfg Config, tokenStr string) (User, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return User{}, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Profile.UserID)
	if err != nil {
		return User{}, errors.Wrap(ErrInvalidToken, "user id")
	}
	return User{ID: id, Role: claims.Profile.Role}, nil
}
