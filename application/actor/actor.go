package actor

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
)

// Claims are the fields the identity provider puts in the bearer token.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type ActorApp interface {
	ValidateToken(ctx context.Context, tokenString string) (model.Actor, error)
}

type actorAppImpl struct {
	secret []byte
}

func NewActorApp(jwtSecret string) ActorApp {
	return &actorAppImpl{secret: []byte(jwtSecret)}
}

// ValidateToken verifies an HS256 token and resolves it into an Actor.
func (s *actorAppImpl) ValidateToken(ctx context.Context, tokenString string) (model.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return model.Actor{}, fmt.Errorf("invalid claims")
	}

	role, ok := constant.ParseRole(claims.Role)
	if !ok {
		return model.Actor{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	email := model.NormalizeEmail(claims.Email)
	if email == "" {
		return model.Actor{}, fmt.Errorf("token missing email")
	}

	return model.Actor{Role: role, Email: email}, nil
}
